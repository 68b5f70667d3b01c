package cwlogs

import (
	"context"

	cwl "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// API mirrors the subset of the SDK CloudWatch Logs client used by the
// logsmanager tool.
type API interface {
	DescribeLogGroups(ctx context.Context, params *cwl.DescribeLogGroupsInput, optFns ...func(*cwl.Options)) (*cwl.DescribeLogGroupsOutput, error)
	DescribeLogStreams(ctx context.Context, params *cwl.DescribeLogStreamsInput, optFns ...func(*cwl.Options)) (*cwl.DescribeLogStreamsOutput, error)
	FilterLogEvents(ctx context.Context, params *cwl.FilterLogEventsInput, optFns ...func(*cwl.Options)) (*cwl.FilterLogEventsOutput, error)
}

var _ API = (*cwl.Client)(nil)
