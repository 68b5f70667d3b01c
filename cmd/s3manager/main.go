// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// s3manager is a thin command-line wrapper over the S3 bucket and
// object operations.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maricar-auditor/aws-manager/awsconf"
	"github.com/maricar-auditor/aws-manager/s3"
)

var opt *awsconf.Option

func newClient(ctx context.Context, region string) *s3.Client {
	cfg, err := opt.Load(ctx, region)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	return s3.NewClient(cfg)
}

func newCreateBucketCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "create_bucket <name>",
		Short: "Create bucket",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if newClient(ctx, region).CreateBucket(ctx, args[0], region) {
				log.Infof("Created bucket %s", args[0])
			}
		},
	}
	cmd.Flags().StringVar(&region, "region", awsconf.DefaultRegion, "AWS Region")

	return cmd
}

func newListBucketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list_buckets",
		Short: "List buckets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			buckets, err := newClient(ctx, "").ListBuckets(ctx)
			if err != nil {
				log.Fatalf("list buckets: %v", err)
			}
			for _, b := range buckets {
				fmt.Println(b.Name)
			}
			fmt.Printf("Found %d buckets!\n", len(buckets))
		},
	}
}

func newGetBucketCmd() *cobra.Command {
	var (
		region string
		create bool
	)

	cmd := &cobra.Command{
		Use:   "get_bucket <name>",
		Short: "Get bucket",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			bucket, err := newClient(ctx, region).GetBucket(ctx, args[0], create, region)
			if err != nil {
				log.Fatalf("get bucket %s: %v", args[0], err)
			}
			if bucket != nil {
				fmt.Println(bucket.Name)
			}
		},
	}
	cmd.Flags().StringVar(&region, "region", awsconf.DefaultRegion, "AWS Region")
	cmd.Flags().BoolVar(&create, "create", false, "Create the bucket when it does not exist")

	return cmd
}

func newCreateBucketObjectCmd() *cobra.Command {
	var keyPrefix string

	cmd := &cobra.Command{
		Use:   "create_bucket_object <bucket_name> <file_path>",
		Short: "Create bucket object",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			obj, err := newClient(ctx, "").CreateBucketObject(ctx, args[0], args[1], keyPrefix)
			if err != nil {
				log.Fatalf("create bucket object: %v", err)
			}
			fmt.Printf("Uploaded %s to bucket %s\n", obj.Key, obj.Bucket)
		},
	}
	cmd.Flags().StringVar(&keyPrefix, "key_prefix", "", "Optional prefix to set in the bucket for the file")

	return cmd
}

func newGetBucketObjectCmd() *cobra.Command {
	var (
		dest      string
		versionID string
	)

	cmd := &cobra.Command{
		Use:   "get_bucket_object <bucket_name> <object_key>",
		Short: "Get bucket object",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			_, filePath, err := newClient(ctx, "").GetBucketObject(ctx, args[0], args[1], dest, versionID)
			if err != nil {
				log.Fatalf("get bucket object: %v", err)
			}
			fmt.Printf("Downloaded %s to %s\n", args[1], filePath)
		},
	}
	cmd.Flags().StringVar(&dest, "dest", "", "Optional location where the downloaded file will be stored")
	cmd.Flags().StringVar(&versionID, "version_id", "", "Optional version id")

	return cmd
}

func newEnableBucketVersioningCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable_bucket_versioning <bucket_name>",
		Short: "Enable versioning of the target bucket",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			status, err := newClient(ctx, "").EnableBucketVersioning(ctx, args[0])
			if err != nil {
				log.Fatalf("enable bucket versioning: %v", err)
			}
			fmt.Println(status)
		},
	}
}

func newDeleteBucketObjectsCmd() *cobra.Command {
	var keyPrefix string

	cmd := &cobra.Command{
		Use:   "delete_bucket_objects <bucket_name>",
		Short: "Delete all bucket objects including all versions of versioned objects",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			n, err := newClient(ctx, "").DeleteBucketObjects(ctx, args[0], keyPrefix)
			if err != nil {
				log.Fatalf("delete bucket objects: %v", err)
			}
			fmt.Printf("Deleted %d object versions from %s\n", n, args[0])
		},
	}
	cmd.Flags().StringVar(&keyPrefix, "key_prefix", "", "Optional prefix limiting which objects are deleted")

	return cmd
}

func newDeleteBucketsCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "delete_buckets",
		Short: "Delete buckets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			n, err := newClient(ctx, "").DeleteBuckets(ctx, name)
			if err != nil {
				log.Fatalf("delete buckets: %v", err)
			}
			fmt.Printf("Deleted %d buckets\n", n)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Optional bucket name to be deleted")

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
		Use:   "s3manager",
		Short: "AWS S3 Bucket Operations",
	}
	root.AddCommand(
		newCreateBucketCmd(),
		newListBucketsCmd(),
		newGetBucketCmd(),
		newCreateBucketObjectCmd(),
		newGetBucketObjectCmd(),
		newEnableBucketVersioningCmd(),
		newDeleteBucketObjectsCmd(),
		newDeleteBucketsCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
