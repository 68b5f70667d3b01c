// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// logsmanager is a thin command-line wrapper over the read-only
// CloudWatch Logs listing and filtering operations.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maricar-auditor/aws-manager/awsconf"
	"github.com/maricar-auditor/aws-manager/cwlogs"
)

var opt *awsconf.Option

func newClient(ctx context.Context, region string) *cwlogs.Client {
	cfg, err := opt.Load(ctx, region)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	return cwlogs.NewClient(cfg)
}

func printToken(token string) {
	if token != "" {
		fmt.Printf("NextToken: %s\n", token)
	}
}

func newListLogGroupsCmd() *cobra.Command {
	var (
		groupName string
		region    string
		nextToken string
	)

	cmd := &cobra.Command{
		Use:   "list_log_groups",
		Short: "List log groups",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			groups, token, err := newClient(ctx, region).ListLogGroups(ctx, groupName, nextToken)
			if err != nil {
				log.Fatalf("list log groups: %v", err)
			}
			for _, g := range groups {
				fmt.Println(aws.ToString(g.LogGroupName))
			}
			printToken(token)
		},
	}
	cmd.Flags().StringVar(&groupName, "group_name", "", "Group name prefix")
	cmd.Flags().StringVar(&region, "region", "", "Region")
	cmd.Flags().StringVar(&nextToken, "next_token", "", "Continuation token from a previous page")

	return cmd
}

func newListLogGroupStreamsCmd() *cobra.Command {
	var (
		streamName string
		regionName string
		nextToken  string
	)

	cmd := &cobra.Command{
		Use:   "list_log_group_streams <group_name>",
		Short: "List log streams within a group",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			streams, token, err := newClient(ctx, regionName).ListLogGroupStreams(ctx, args[0], streamName, nextToken)
			if err != nil {
				log.Fatalf("list log group streams: %v", err)
			}
			for _, s := range streams {
				fmt.Println(aws.ToString(s.LogStreamName))
			}
			printToken(token)
		},
	}
	cmd.Flags().StringVar(&streamName, "stream_name", "", "Stream name prefix")
	cmd.Flags().StringVar(&regionName, "region_name", "", "Name of region")
	cmd.Flags().StringVar(&nextToken, "next_token", "", "Continuation token from a previous page")

	return cmd
}

func newFilterLogEventsCmd() *cobra.Command {
	var (
		start      int64
		stop       int64
		regionName string
		nextToken  string
	)

	cmd := &cobra.Command{
		Use:   "filter_log_events <group_name> <filter_pat>",
		Short: "Filter log events within a group",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			events, token, err := newClient(ctx, regionName).FilterLogEvents(ctx, args[0], args[1], start, stop, nextToken)
			if err != nil {
				log.Fatalf("filter log events: %v", err)
			}
			for _, e := range events {
				ts := time.UnixMilli(aws.ToInt64(e.Timestamp)).UTC().Format(time.RFC3339)
				fmt.Printf("%s %s\n", ts, *e.Message)
			}
			printToken(token)
		},
	}
	cmd.Flags().Int64Var(&start, "start", 0, "Start of the time range, epoch milliseconds")
	cmd.Flags().Int64Var(&stop, "stop", 0, "End of the time range, epoch milliseconds")
	cmd.Flags().StringVar(&regionName, "region_name", "", "The name of the region")
	cmd.Flags().StringVar(&nextToken, "next_token", "", "Continuation token from a previous page")

	return cmd
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
		Use:   "logsmanager",
		Short: "AWS CloudWatch Logs Operations",
	}
	root.AddCommand(
		newListLogGroupsCmd(),
		newListLogGroupStreamsCmd(),
		newFilterLogEventsCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
