// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dynamomanager is a thin command-line wrapper over the DynamoDB table
// lifecycle operations.
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
	"github.com/maricar-auditor/aws-manager/dynamo"
)

var opt *awsconf.Option

func newClient(ctx context.Context) *dynamo.Client {
	cfg, err := opt.Load(ctx, "")
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	return dynamo.NewClient(cfg)
}

func newCreateTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create_table <tabledef>",
		Short: "Create a DynamoDB table",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			def, err := dynamo.ParseTableDef(args[0])
			if err != nil {
				log.Fatalf("Invalid configuration: %v", err)
			}

			ctx := cmd.Context()
			desc, err := newClient(ctx).CreateTable(ctx, def)
			if err != nil {
				log.Fatalf("create table %s: %v", def.TableName, err)
			}

			fmt.Printf("Table %s is %s\n", aws.ToString(desc.TableName), desc.TableStatus)
			fmt.Println("Done")
		},
	}
}

func newDeleteTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete_table <tablename>",
		Short: "Delete a DynamoDB table",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if err := newClient(ctx).DeleteTable(ctx, args[0]); err != nil {
				log.Fatalf("delete table %s: %v", args[0], err)
			}
			fmt.Println("Done")
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
		Use:   "dynamomanager",
		Short: "AWS DynamoDB Table Operations",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Invalid/Missing command.")
			os.Exit(1)
		},
	}
	root.AddCommand(
		newCreateTableCmd(),
		newDeleteTableCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
