package dynamo

import "fmt"

var (
	// ErrInvalidTableDef reports a definition file that does not carry
	// exactly the required key set.
	ErrInvalidTableDef error = fmt.Errorf("invalid table definition")
)
