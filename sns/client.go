// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sns implements the topic and subscription operations behind
// the snsmanager tool.
package sns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// smsProtocol is the only subscription protocol this tool speaks.
const smsProtocol = "sms"

type Client struct {
	api API
}

func NewClient(cfg aws.Config) *Client {
	return &Client{api: snsv2.NewFromConfig(cfg)}
}

// NewClientFromAPI wires an explicit backend, used by tests.
func NewClientFromAPI(api API) *Client {
	return &Client{api: api}
}

// CreateTopic creates a topic by name and returns its ARN. Creating an
// existing topic is idempotent on the remote side.
func (c *Client) CreateTopic(ctx context.Context, name string) (string, error) {
	out, err := c.api.CreateTopic(ctx, &snsv2.CreateTopicInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", err
	}

	return aws.ToString(out.TopicArn), nil
}

// ListTopics lists one page of topics. A non-empty nextToken is
// forwarded verbatim; the returned token continues the listing.
func (c *Client) ListTopics(ctx context.Context, nextToken string) ([]types.Topic, string, error) {
	input := &snsv2.ListTopicsInput{}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.ListTopics(ctx, input)
	if err != nil {
		return nil, "", err
	}

	return out.Topics, aws.ToString(out.NextToken), nil
}

// Subscribe subscribes a mobile number to a topic over SMS and returns
// the subscription ARN.
func (c *Client) Subscribe(ctx context.Context, topicARN, mobileNumber string) (string, error) {
	out, err := c.api.Subscribe(ctx, &snsv2.SubscribeInput{
		TopicArn:              aws.String(topicARN),
		Protocol:              aws.String(smsProtocol),
		Endpoint:              aws.String(mobileNumber),
		ReturnSubscriptionArn: true,
	})
	if err != nil {
		return "", err
	}

	return aws.ToString(out.SubscriptionArn), nil
}

// ListSubscriptions lists one page of subscriptions with the same token
// threading as ListTopics.
func (c *Client) ListSubscriptions(ctx context.Context, nextToken string) ([]types.Subscription, string, error) {
	input := &snsv2.ListSubscriptionsInput{}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.api.ListSubscriptions(ctx, input)
	if err != nil {
		return nil, "", err
	}

	return out.Subscriptions, aws.ToString(out.NextToken), nil
}

// Publish sends a message to a topic and returns the message id.
func (c *Client) Publish(ctx context.Context, topicARN, message string) (string, error) {
	out, err := c.api.Publish(ctx, &snsv2.PublishInput{
		TopicArn: aws.String(topicARN),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", err
	}

	return aws.ToString(out.MessageId), nil
}

// Unsubscribe removes one subscription by ARN.
func (c *Client) Unsubscribe(ctx context.Context, subscriptionARN string) error {
	_, err := c.api.Unsubscribe(ctx, &snsv2.UnsubscribeInput{
		SubscriptionArn: aws.String(subscriptionARN),
	})
	return err
}

// DeleteTopic deletes a topic by ARN. The remote cascades deletion to
// the topic's subscriptions.
func (c *Client) DeleteTopic(ctx context.Context, topicARN string) error {
	_, err := c.api.DeleteTopic(ctx, &snsv2.DeleteTopicInput{
		TopicArn: aws.String(topicARN),
	})
	return err
}
