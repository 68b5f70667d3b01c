package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// API mirrors the subset of the SDK DynamoDB client used by the
// dynamomanager tool. It also satisfies the SDK's DescribeTableAPIClient,
// so the table waiters run against the same backend.
type API interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

var (
	_ API                             = (*dynamodb.Client)(nil)
	_ dynamodb.DescribeTableAPIClient = (API)(nil)
)
