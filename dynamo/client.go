// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamo implements the table lifecycle operations behind the
// dynamomanager tool.
package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// Provisioned throughput is fixed, matching the table tooling it
	// replaces; capacity tuning happens out of band.
	readCapacityUnits  = 5
	writeCapacityUnits = 5

	tableWaitDur = 5 * time.Minute
)

type Client struct {
	api API
}

func NewClient(cfg aws.Config) *Client {
	return &Client{api: dynamodb.NewFromConfig(cfg)}
}

// NewClientFromAPI wires an explicit backend, used by tests.
func NewClientFromAPI(api API) *Client {
	return &Client{api: api}
}

// CreateTable creates the table described by def and blocks until the
// remote reports it existing.
func (c *Client) CreateTable(ctx context.Context, def *TableDef) (*types.TableDescription, error) {
	out, err := c.api.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(def.TableName),
		KeySchema:            def.KeySchema,
		AttributeDefinitions: def.AttributeDefinitions,
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(readCapacityUnits),
			WriteCapacityUnits: aws.Int64(writeCapacityUnits),
		},
	})
	if err != nil {
		return nil, err
	}

	waiter := dynamodb.NewTableExistsWaiter(c.api)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(def.TableName),
	}, tableWaitDur); err != nil {
		return nil, err
	}

	return out.TableDescription, nil
}

// GetTable fetches the table description by name.
func (c *Client) GetTable(ctx context.Context, name string) (*types.TableDescription, error) {
	out, err := c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}

	return out.Table, nil
}

// DeleteTable deletes the named table and blocks until the remote
// reports it gone.
func (c *Client) DeleteTable(ctx context.Context, name string) error {
	_, err := c.api.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		return err
	}

	waiter := dynamodb.NewTableNotExistsWaiter(c.api)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	}, tableWaitDur)
}
