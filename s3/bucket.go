package s3

import "time"

type Bucket struct {
	Name         string
	CreationDate time.Time
}

type Object struct {
	Bucket    string
	Key       string
	VersionID string
}
