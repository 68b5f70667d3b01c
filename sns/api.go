package sns

import (
	"context"

	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"
)

// API mirrors the subset of the SDK SNS client used by the snsmanager
// tool.
type API interface {
	CreateTopic(ctx context.Context, params *snsv2.CreateTopicInput, optFns ...func(*snsv2.Options)) (*snsv2.CreateTopicOutput, error)
	ListTopics(ctx context.Context, params *snsv2.ListTopicsInput, optFns ...func(*snsv2.Options)) (*snsv2.ListTopicsOutput, error)
	Subscribe(ctx context.Context, params *snsv2.SubscribeInput, optFns ...func(*snsv2.Options)) (*snsv2.SubscribeOutput, error)
	ListSubscriptions(ctx context.Context, params *snsv2.ListSubscriptionsInput, optFns ...func(*snsv2.Options)) (*snsv2.ListSubscriptionsOutput, error)
	Publish(ctx context.Context, params *snsv2.PublishInput, optFns ...func(*snsv2.Options)) (*snsv2.PublishOutput, error)
	Unsubscribe(ctx context.Context, params *snsv2.UnsubscribeInput, optFns ...func(*snsv2.Options)) (*snsv2.UnsubscribeOutput, error)
	DeleteTopic(ctx context.Context, params *snsv2.DeleteTopicInput, optFns ...func(*snsv2.Options)) (*snsv2.DeleteTopicOutput, error)
}

var _ API = (*snsv2.Client)(nil)
