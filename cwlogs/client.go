// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cwlogs implements the read-only log listing and filtering
// operations behind the logsmanager tool. Groups and streams are never
// created or deleted here.
package cwlogs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cwl "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
)

type Client struct {
	api API
}

func NewClient(cfg aws.Config) *Client {
	return &Client{api: cwl.NewFromConfig(cfg)}
}

// NewClientFromAPI wires an explicit backend, used by tests.
func NewClientFromAPI(api API) *Client {
	return &Client{api: api}
}

// ListLogGroups lists one page of log groups, optionally filtered by a
// name prefix. The returned token continues the listing when non-empty.
func (c *Client) ListLogGroups(ctx context.Context, groupPrefix, nextToken string) ([]types.LogGroup, string, error) {
	input := &cwl.DescribeLogGroupsInput{}
	if groupPrefix != "" {
		input.LogGroupNamePrefix = aws.String(groupPrefix)
	}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.DescribeLogGroups(ctx, input)
	if err != nil {
		return nil, "", err
	}

	return out.LogGroups, aws.ToString(out.NextToken), nil
}

// ListLogGroupStreams lists one page of streams within a group,
// optionally filtered by a stream-name prefix.
func (c *Client) ListLogGroupStreams(ctx context.Context, group, streamPrefix, nextToken string) ([]types.LogStream, string, error) {
	input := &cwl.DescribeLogStreamsInput{
		LogGroupName: aws.String(group),
	}
	if streamPrefix != "" {
		input.LogStreamNamePrefix = aws.String(streamPrefix)
	}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.DescribeLogStreams(ctx, input)
	if err != nil {
		return nil, "", err
	}

	return out.LogStreams, aws.ToString(out.NextToken), nil
}

// FilterLogEvents returns one page of events within a group matching
// the filter pattern. start and stop are epoch milliseconds; zero
// leaves the bound open.
func (c *Client) FilterLogEvents(ctx context.Context, group, pattern string, start, stop int64, nextToken string) ([]types.FilteredLogEvent, string, error) {
	input := &cwl.FilterLogEventsInput{
		LogGroupName:  aws.String(group),
		FilterPattern: aws.String(pattern),
	}
	if start != 0 {
		input.StartTime = aws.Int64(start)
	}
	if stop != 0 {
		input.EndTime = aws.Int64(stop)
	}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.FilterLogEvents(ctx, input)
	if err != nil {
		return nil, "", err
	}

	return out.Events, aws.ToString(out.NextToken), nil
}
