// Copyright 2023 the aws-manager Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This repository contains four independent command-line utilities for
// managing AWS resources: s3manager (buckets and objects), logsmanager
// (CloudWatch Logs, read-only), dynamomanager (DynamoDB tables) and
// snsmanager (SNS topics and subscriptions).
//
// Each binary under cmd/ is a thin wrapper over the matching service
// package (s3, cwlogs, dynamo, sns). Connection options shared by all
// four live in awsconf.
package lib
