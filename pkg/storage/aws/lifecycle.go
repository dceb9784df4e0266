package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

// The API error code S3 returns for a bucket without a lifecycle
// configuration; mapped to the nil sentinel rather than an error.
const errCodeNoSuchLifecycle = "NoSuchLifecycleConfiguration"

func (c *S3Client) GetLifecycle(ctx context.Context, bucket string) (*lifecycle.Configuration, error) {
	out, err := c.client.GetBucketLifecycleConfiguration(ctx, &s3.GetBucketLifecycleConfigurationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == errCodeNoSuchLifecycle {
			c.logger.Debug("Bucket has no lifecycle configuration", "bucket", bucket)
			return nil, nil
		}
		return nil, &lifecycle.ProviderRequestError{
			Provider: common.AWS,
			Op:       "GetBucketLifecycleConfiguration",
			Bucket:   bucket,
			Err:      err,
		}
	}

	if len(out.Rules) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(out.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lifecycle rules for bucket %q: %w", bucket, err)
	}

	return &lifecycle.Configuration{
		Raw:   raw,
		Rules: summarizeRules(out.Rules),
	}, nil
}

func (c *S3Client) PutLifecycle(ctx context.Context, bucket string, cfg *lifecycle.Configuration) error {
	if cfg.Empty() {
		return fmt.Errorf("refusing to put empty lifecycle configuration for bucket %q (use DeleteLifecycle)", bucket)
	}

	var rules []types.LifecycleRule
	if err := json.Unmarshal(cfg.Raw, &rules); err != nil {
		return fmt.Errorf("failed to decode lifecycle rules for bucket %q: %w", bucket, err)
	}

	_, err := c.client.PutBucketLifecycleConfiguration(ctx, &s3.PutBucketLifecycleConfigurationInput{
		Bucket: aws.String(bucket),
		LifecycleConfiguration: &types.BucketLifecycleConfiguration{
			Rules: rules,
		},
	})
	if err != nil {
		return &lifecycle.ProviderRequestError{
			Provider: common.AWS,
			Op:       "PutBucketLifecycleConfiguration",
			Bucket:   bucket,
			Err:      err,
		}
	}

	c.logger.Debug("Applied lifecycle configuration", "bucket", bucket, "rules", len(rules))
	return nil
}

func (c *S3Client) DeleteLifecycle(ctx context.Context, bucket string) error {
	_, err := c.client.DeleteBucketLifecycle(ctx, &s3.DeleteBucketLifecycleInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return &lifecycle.ProviderRequestError{
			Provider: common.AWS,
			Op:       "DeleteBucketLifecycle",
			Bucket:   bucket,
			Err:      err,
		}
	}

	c.logger.Debug("Removed lifecycle configuration", "bucket", bucket)
	return nil
}

// DecodeLifecycle parses an S3-schema rules array without any remote call.
// An empty array decodes to the nil sentinel.
func (c *S3Client) DecodeLifecycle(raw []byte) (*lifecycle.Configuration, error) {
	var rules []types.LifecycleRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("invalid S3 lifecycle rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, nil
	}

	return &lifecycle.Configuration{
		Raw:   raw,
		Rules: summarizeRules(rules),
	}, nil
}
