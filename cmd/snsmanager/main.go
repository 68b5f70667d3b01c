// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// snsmanager is a thin command-line wrapper over the SNS topic and
// subscription operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maricar-auditor/aws-manager/awsconf"
	"github.com/maricar-auditor/aws-manager/sns"
)

var opt *awsconf.Option

func newClient(ctx context.Context) *sns.Client {
	cfg, err := opt.Load(ctx, "")
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	return sns.NewClient(cfg)
}

func printToken(token string) {
	if token != "" {
		fmt.Printf("NextToken: %s\n", token)
	}
}

func newCreateTopicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create_sns_topic <topic_name>",
		Short: "Create SNS topic",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			arn, err := newClient(ctx).CreateTopic(ctx, args[0])
			if err != nil {
				log.Fatalf("create topic %s: %v", args[0], err)
			}
			fmt.Println(arn)
		},
	}
}

func newListTopicsCmd() *cobra.Command {
	var nextToken string

	cmd := &cobra.Command{
		Use:   "list_sns_topics",
		Short: "List SNS topics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			topics, token, err := newClient(ctx).ListTopics(ctx, nextToken)
			if err != nil {
				log.Fatalf("list topics: %v", err)
			}
			for _, topic := range topics {
				fmt.Println(aws.ToString(topic.TopicArn))
			}
			printToken(token)
		},
	}
	cmd.Flags().StringVar(&nextToken, "next_token", "", "Continuation token from a previous page")

	return cmd
}

func newSubscribeTopicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe_sns_topic <topic_arn> <mobile_number>",
		Short: "Subscribe a mobile number to an SNS topic",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			arn, err := newClient(ctx).Subscribe(ctx, args[0], args[1])
			if err != nil {
				log.Fatalf("subscribe to topic %s: %v", args[0], err)
			}
			fmt.Println(arn)
		},
	}
}

func newListSubscriptionsCmd() *cobra.Command {
	var nextToken string

	cmd := &cobra.Command{
		Use:   "list_sns_subscriptions",
		Short: "List SNS subscriptions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			subs, token, err := newClient(ctx).ListSubscriptions(ctx, nextToken)
			if err != nil {
				log.Fatalf("list subscriptions: %v", err)
			}
			for _, sub := range subs {
				fmt.Printf("%s %s %s\n",
					aws.ToString(sub.SubscriptionArn),
					aws.ToString(sub.Protocol),
					aws.ToString(sub.Endpoint))
			}
			printToken(token)
		},
	}
	cmd.Flags().StringVar(&nextToken, "next_token", "", "Continuation token from a previous page")

	return cmd
}

func newSendMessageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send_sns_message <topic_arn> <message>",
		Short: "Publish a message to an SNS topic",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id, err := newClient(ctx).Publish(ctx, args[0], args[1])
			if err != nil {
				log.Fatalf("publish to topic %s: %v", args[0], err)
			}
			fmt.Println(id)
		},
	}
}

func newUnsubscribeTopicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe_sns_topic <subscription_arn>",
		Short: "Remove an SNS subscription",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if err := newClient(ctx).Unsubscribe(ctx, args[0]); err != nil {
				log.Fatalf("unsubscribe %s: %v", args[0], err)
			}
			log.Infof("Unsubscribed %s", args[0])
		},
	}
}

func newDeleteTopicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete_sns_topic <topic_arn>",
		Short: "Delete an SNS topic and all its subscriptions",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if err := newClient(ctx).DeleteTopic(ctx, args[0]); err != nil {
				log.Fatalf("delete topic %s: %v", args[0], err)
			}
			log.Infof("Deleted topic %s", args[0])
		},
	}
}

func main() {
	log.SetOutput(os.Stdout)

	viper.SetConfigName(".aws-manager")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()
	opt = awsconf.ParseOption(viper.GetViper())

	root := &cobra.Command{
		Use:   "snsmanager",
		Short: "AWS SNS Operations",
	}
	root.AddCommand(
		newCreateTopicCmd(),
		newListTopicsCmd(),
		newSubscribeTopicCmd(),
		newListSubscriptionsCmd(),
		newSendMessageCmd(),
		newUnsubscribeTopicCmd(),
		newDeleteTopicCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
