package dynamo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// requiredKeys is the exact key set a table definition file must carry.
var requiredKeys = []string{"table_name", "pk", "pkdef"}

// TableDef is a table definition parsed from a JSON file. pk maps to
// the key schema and pkdef to the attribute definitions, in the remote
// service's own request shape.
type TableDef struct {
	TableName            string
	KeySchema            []types.KeySchemaElement
	AttributeDefinitions []types.AttributeDefinition
}

// ParseTableDef reads and validates a table definition file. The file
// must be a JSON object with exactly the keys table_name, pk and pkdef;
// missing or extra keys fail with ErrInvalidTableDef. Key order does
// not matter.
func ParseTableDef(path string) (*TableDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTableDef, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTableDef, path, err)
	}

	if len(fields) != len(requiredKeys) {
		return nil, fmt.Errorf("%w: %s: want exactly keys %v", ErrInvalidTableDef, path, requiredKeys)
	}
	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: %s: missing key %q", ErrInvalidTableDef, path, key)
		}
	}

	def := &TableDef{}
	if err := json.Unmarshal(fields["table_name"], &def.TableName); err != nil {
		return nil, fmt.Errorf("%w: %s: table_name: %v", ErrInvalidTableDef, path, err)
	}
	if err := json.Unmarshal(fields["pk"], &def.KeySchema); err != nil {
		return nil, fmt.Errorf("%w: %s: pk: %v", ErrInvalidTableDef, path, err)
	}
	if err := json.Unmarshal(fields["pkdef"], &def.AttributeDefinitions); err != nil {
		return nil, fmt.Errorf("%w: %s: pkdef: %v", ErrInvalidTableDef, path, err)
	}

	return def, nil
}
