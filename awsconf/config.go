// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package awsconf builds the shared aws.Config used by every manager
// binary. Region, endpoint and static keys come from viper (config file
// or environment); anything unset falls through to the SDK default chain.
package awsconf

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/spf13/viper"
)

const (
	// DefaultRegion matches the bucket tooling default.
	DefaultRegion = "us-east-2"

	maxRetryAttempts = 20
	maxBackoffDelay  = 20 * time.Second
)

type Option struct {
	Region    string `json:"region"`
	URL       string `json:"url"`
	AccessKey string `json:"accesskey"`
	SecretKey string `json:"secretkey"`
}

// ParseOption reads the connection options from viper. Missing keys
// stay empty and defer to the SDK default chain.
func ParseOption(v *viper.Viper) *Option {
	return &Option{
		Region:    v.GetString("region"),
		URL:       v.GetString("url"),
		AccessKey: v.GetString("accesskey"),
		SecretKey: v.GetString("secretkey"),
	}
}

type NoOpRateLimit struct{}

func (NoOpRateLimit) AddTokens(uint) error { return nil }
func (NoOpRateLimit) GetToken(context.Context, uint) (func() error, error) {
	return noOpToken, nil
}
func noOpToken() error { return nil }

type ExponentialJitterBackoff struct {
	minDelay time.Duration
}

func NewExponentialJitterBackoff(minDelay time.Duration) *ExponentialJitterBackoff {
	return &ExponentialJitterBackoff{minDelay}
}

func (j *ExponentialJitterBackoff) BackoffDelay(attempt int, err error) (time.Duration, error) {
	var jitter = float64(rand.Intn(120-80)+80) / 100
	retryTime := time.Duration(float64(j.minDelay.Nanoseconds()) * math.Pow(3, float64(attempt)) * jitter)

	// Cap retry time at 5 minutes to avoid too long a wait
	if retryTime > 5*time.Minute {
		retryTime = 5 * time.Minute
	}

	return retryTime, nil
}

// Load resolves the aws.Config for one manager invocation. A non-empty
// region argument wins over the option and the default.
func (o *Option) Load(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		region = o.Region
	}
	if region == "" {
		region = DefaultRegion
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithClientLogMode(aws.LogRetries),
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxBackoffDelay(retry.NewStandard(func(so *retry.StandardOptions) {
				so.MaxAttempts = maxRetryAttempts
				so.RateLimiter = NoOpRateLimit{}
				so.Backoff = NewExponentialJitterBackoff(25 * time.Millisecond)
			}), maxBackoffDelay)
		}),
	}

	if o.AccessKey != "" && o.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, ""))))
	}

	if o.URL != "" {
		host := o.URL
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           host,
				SigningRegion: region,
			}, nil
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
