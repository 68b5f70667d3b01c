// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package s3 implements the bucket and object operations behind the
// s3manager tool.
package s3

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/maricar-auditor/aws-manager/awsconf"
)

const (
	// maxDeleteBatch is the remote cap on one batched DeleteObjects call.
	maxDeleteBatch = 1000

	bucketWaitDur = 5 * time.Minute
)

type Client struct {
	api        API
	uploader   Uploader
	downloader Downloader
}

func NewClient(cfg aws.Config) *Client {
	client := s3v2.NewFromConfig(cfg, func(o *s3v2.Options) {
		o.UsePathStyle = true
	})

	return &Client{
		api:        client,
		uploader:   manager.NewUploader(client),
		downloader: manager.NewDownloader(client),
	}
}

// NewClientFromAPI wires an explicit backend, used by tests.
func NewClientFromAPI(api API, uploader Uploader, downloader Downloader) *Client {
	return &Client{
		api:        api,
		uploader:   uploader,
		downloader: downloader,
	}
}

// CreateBucket creates a region-qualified bucket. Provider errors are
// logged together with the parameters and swallowed; the return value
// reports whether the bucket was created.
func (c *Client) CreateBucket(ctx context.Context, name, region string) bool {
	if region == "" {
		region = awsconf.DefaultRegion
	}

	input := &s3v2.CreateBucketInput{
		Bucket: aws.String(name),
		CreateBucketConfiguration: &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		},
	}

	if _, err := c.api.CreateBucket(ctx, input); err != nil {
		log.Errorf("%s - Bucket(%s) Region(%s)", apiErrorMessage(err), name, region)
		return false
	}

	return true
}

func (c *Client) ListBuckets(ctx context.Context) ([]Bucket, error) {
	out, err := c.api.ListBuckets(ctx, &s3v2.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, Bucket{
			Name:         aws.ToString(b.Name),
			CreationDate: aws.ToTime(b.CreationDate),
		})
	}

	return buckets, nil
}

// GetBucket fetches a bucket by name. When the bucket is absent and
// create is set, it creates the bucket and re-fetches exactly once.
// When absent and not creating, it logs a warning and returns nil.
func (c *Client) GetBucket(ctx context.Context, name string, create bool, region string) (*Bucket, error) {
	_, err := c.api.HeadBucket(ctx, &s3v2.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err == nil {
		return &Bucket{Name: name}, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	if create {
		c.CreateBucket(ctx, name, region)
		return c.GetBucket(ctx, name, false, region)
	}

	log.Warnf("Bucket %s does not exist!", name)
	return nil, nil
}

// CreateBucketObject uploads the local file at filePath under the key
// keyPrefix+filePath.
func (c *Client) CreateBucketObject(ctx context.Context, bucket, filePath, keyPrefix string) (*Object, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("can't open local file %s: %w", filePath, err)
	}
	defer f.Close()

	key := keyPrefix + filePath

	input := &s3v2.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	}

	if _, err := c.uploader.Upload(ctx, input); err != nil {
		log.Warnf("Upload Object(%s) in Bucket(%s) failure, %s", key, bucket, apiErrorMessage(err))
		return nil, err
	}

	return &Object{
		Bucket: bucket,
		Key:    key,
	}, nil
}

// GetBucketObject downloads an object to destDir (current directory
// when empty), deriving the local filename from the key's basename.
// It returns the object handle and the local file path.
func (c *Client) GetBucketObject(ctx context.Context, bucket, key, destDir, versionID string) (*Object, string, error) {
	filePath := filepath.Join(destDir, filepath.Base(key))

	f, err := os.Create(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("can't create local file %s: %w", filePath, err)
	}
	defer f.Close()

	input := &s3v2.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if versionID != "" {
		input.VersionId = aws.String(versionID)
	}

	if _, err := c.downloader.Download(ctx, f, input); err != nil {
		log.Warnf("Get Object(%s) From Bucket(%s) with Error: %s", key, bucket, apiErrorMessage(err))
		return nil, "", err
	}

	return &Object{
		Bucket:    bucket,
		Key:       key,
		VersionID: versionID,
	}, filePath, nil
}

// EnableBucketVersioning turns on versioning and returns the status the
// bucket reports afterwards.
func (c *Client) EnableBucketVersioning(ctx context.Context, bucket string) (string, error) {
	input := &s3v2.PutBucketVersioningInput{
		Bucket: aws.String(bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	}

	if _, err := c.api.PutBucketVersioning(ctx, input); err != nil {
		return "", err
	}

	out, err := c.api.GetBucketVersioning(ctx, &s3v2.GetBucketVersioningInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return "", err
	}

	return string(out.Status), nil
}

// DeleteBucketObjects deletes every object under keyPrefix including
// all historical versions and delete markers. Targets are flushed in
// quiet batches of at most maxDeleteBatch per DeleteObjects call. It
// returns the number of versions deleted.
func (c *Client) DeleteBucketObjects(ctx context.Context, bucket, keyPrefix string) (int, error) {
	input := &s3v2.ListObjectVersionsInput{
		Bucket: aws.String(bucket),
	}
	if keyPrefix != "" {
		input.Prefix = aws.String(keyPrefix)
	}

	deleted := 0
	targets := make([]types.ObjectIdentifier, 0, maxDeleteBatch)

	flush := func() error {
		if len(targets) == 0 {
			return nil
		}
		_, err := c.api.DeleteObjects(ctx, &s3v2.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{
				Objects: targets,
				Quiet:   true,
			},
		})
		if err != nil {
			return err
		}
		deleted += len(targets)
		targets = make([]types.ObjectIdentifier, 0, maxDeleteBatch)
		return nil
	}

	add := func(key, versionID *string) error {
		targets = append(targets, types.ObjectIdentifier{
			Key:       key,
			VersionId: versionID,
		})
		if len(targets) == maxDeleteBatch {
			return flush()
		}
		return nil
	}

	for {
		out, err := c.api.ListObjectVersions(ctx, input)
		if err != nil {
			return deleted, err
		}

		for _, v := range out.Versions {
			if err := add(v.Key, v.VersionId); err != nil {
				return deleted, err
			}
		}
		for _, m := range out.DeleteMarkers {
			if err := add(m.Key, m.VersionId); err != nil {
				return deleted, err
			}
		}

		if !out.IsTruncated {
			break
		}
		input.KeyMarker = out.NextKeyMarker
		input.VersionIdMarker = out.NextVersionIdMarker
	}

	if err := flush(); err != nil {
		return deleted, err
	}

	return deleted, nil
}

// DeleteBuckets deletes the named bucket or, when name is empty, every
// bucket in the account. The unnamed loop is best-effort: a provider
// error on one bucket is logged and the loop continues. It returns the
// number of buckets deleted.
func (c *Client) DeleteBuckets(ctx context.Context, name string) (int, error) {
	if name != "" {
		bucket, err := c.GetBucket(ctx, name, false, "")
		if err != nil {
			return 0, err
		}
		if bucket == nil {
			return 0, nil
		}
		if err := c.deleteBucket(ctx, name); err != nil {
			return 0, err
		}
		return 1, nil
	}

	out, err := c.api.ListBuckets(ctx, &s3v2.ListBucketsInput{})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, b := range out.Buckets {
		bucketName := aws.ToString(b.Name)
		if err := c.deleteBucket(ctx, bucketName); err != nil {
			log.Warnf("Bucket %s: %s", bucketName, apiErrorMessage(err))
			continue
		}
		count++
	}

	return count, nil
}

// deleteBucket removes one bucket and blocks until the remote reports
// it gone.
func (c *Client) deleteBucket(ctx context.Context, name string) error {
	_, err := c.api.DeleteBucket(ctx, &s3v2.DeleteBucketInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		return err
	}

	waiter := s3v2.NewBucketNotExistsWaiter(c.api)
	return waiter.Wait(ctx, &s3v2.HeadBucketInput{
		Bucket: aws.String(name),
	}, bucketWaitDur)
}
