package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// API mirrors the subset of the SDK S3 client used by this tool, so the
// operations can run against a mock backend in tests.
type API interface {
	CreateBucket(ctx context.Context, params *s3v2.CreateBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error)
	HeadBucket(ctx context.Context, params *s3v2.HeadBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadBucketOutput, error)
	ListBuckets(ctx context.Context, params *s3v2.ListBucketsInput, optFns ...func(*s3v2.Options)) (*s3v2.ListBucketsOutput, error)
	DeleteBucket(ctx context.Context, params *s3v2.DeleteBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteBucketOutput, error)
	PutBucketVersioning(ctx context.Context, params *s3v2.PutBucketVersioningInput, optFns ...func(*s3v2.Options)) (*s3v2.PutBucketVersioningOutput, error)
	GetBucketVersioning(ctx context.Context, params *s3v2.GetBucketVersioningInput, optFns ...func(*s3v2.Options)) (*s3v2.GetBucketVersioningOutput, error)
	ListObjectVersions(ctx context.Context, params *s3v2.ListObjectVersionsInput, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectVersionsOutput, error)
	DeleteObjects(ctx context.Context, params *s3v2.DeleteObjectsInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteObjectsOutput, error)
}

// Uploader matches manager.Uploader.
type Uploader interface {
	Upload(ctx context.Context, input *s3v2.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Downloader matches manager.Downloader.
type Downloader interface {
	Download(ctx context.Context, w io.WriterAt, input *s3v2.GetObjectInput, opts ...func(*manager.Downloader)) (int64, error)
}

var (
	_ API        = (*s3v2.Client)(nil)
	_ Uploader   = (*manager.Uploader)(nil)
	_ Downloader = (*manager.Downloader)(nil)
)
