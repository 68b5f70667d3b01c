package dynamo

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	createTable   func(*dynamodb.CreateTableInput) (*dynamodb.CreateTableOutput, error)
	describeTable func(*dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error)
	deleteTable   func(*dynamodb.DeleteTableInput) (*dynamodb.DeleteTableOutput, error)

	describeCalls int
}

func (m *mockAPI) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	return m.createTable(params)
}

func (m *mockAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	m.describeCalls++
	return m.describeTable(params)
}

func (m *mockAPI) DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	return m.deleteTable(params)
}

func activeTable(name string) *types.TableDescription {
	return &types.TableDescription{
		TableName:   aws.String(name),
		TableStatus: types.TableStatusActive,
	}
}

func TestCreateTableWaitsForActive(t *testing.T) {
	var got *dynamodb.CreateTableInput
	api := &mockAPI{
		createTable: func(params *dynamodb.CreateTableInput) (*dynamodb.CreateTableOutput, error) {
			got = params
			return &dynamodb.CreateTableOutput{TableDescription: activeTable("t1")}, nil
		},
		describeTable: func(params *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
			return &dynamodb.DescribeTableOutput{Table: activeTable("t1")}, nil
		},
	}
	c := NewClientFromAPI(api)

	def := &TableDef{
		TableName: "t1",
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
	}

	desc, err := c.CreateTable(context.TODO(), def)
	require.NoError(t, err)

	assert.Equal(t, "t1", aws.ToString(desc.TableName))
	assert.Equal(t, int64(5), aws.ToInt64(got.ProvisionedThroughput.ReadCapacityUnits))
	assert.Equal(t, int64(5), aws.ToInt64(got.ProvisionedThroughput.WriteCapacityUnits))
	assert.GreaterOrEqual(t, api.describeCalls, 1, "create must wait on the exists poll")
}

func TestGetTable(t *testing.T) {
	api := &mockAPI{
		describeTable: func(params *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
			return &dynamodb.DescribeTableOutput{Table: activeTable(aws.ToString(params.TableName))}, nil
		},
	}
	c := NewClientFromAPI(api)

	desc, err := c.GetTable(context.TODO(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", aws.ToString(desc.TableName))
}

func TestDeleteTableWaitsForGone(t *testing.T) {
	deleted := false
	api := &mockAPI{
		deleteTable: func(params *dynamodb.DeleteTableInput) (*dynamodb.DeleteTableOutput, error) {
			deleted = true
			return &dynamodb.DeleteTableOutput{}, nil
		},
		describeTable: func(params *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
			if deleted {
				return nil, &types.ResourceNotFoundException{}
			}
			return &dynamodb.DescribeTableOutput{Table: activeTable("t1")}, nil
		},
	}
	c := NewClientFromAPI(api)

	err := c.DeleteTable(context.TODO(), "t1")
	require.NoError(t, err)

	assert.True(t, deleted)
	assert.GreaterOrEqual(t, api.describeCalls, 1, "delete must wait on the not-exists poll")
}

func TestDeleteTableRemoteError(t *testing.T) {
	api := &mockAPI{
		deleteTable: func(params *dynamodb.DeleteTableInput) (*dynamodb.DeleteTableOutput, error) {
			return nil, &types.ResourceNotFoundException{}
		},
	}
	c := NewClientFromAPI(api)

	err := c.DeleteTable(context.TODO(), "missing")
	require.Error(t, err)
	assert.Equal(t, 0, api.describeCalls, "no wait after a failed delete")
}
