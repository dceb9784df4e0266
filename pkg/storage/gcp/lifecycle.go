package gcp

import (
	"context"
	"encoding/json"
	"fmt"

	gcpstorage "cloud.google.com/go/storage"

	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

// GCS has no "no lifecycle" error state: a bucket without lifecycle rules
// simply carries an empty rule list on its attributes.

func (g *GCSClient) GetLifecycle(ctx context.Context, bucket string) (*lifecycle.Configuration, error) {
	attrs, err := g.client.Bucket(bucket).Attrs(ctx)
	if err != nil {
		return nil, &lifecycle.ProviderRequestError{
			Provider: common.GCP,
			Op:       "Bucket.Attrs",
			Bucket:   bucket,
			Err:      err,
		}
	}

	if len(attrs.Lifecycle.Rules) == 0 {
		g.logger.Debug("Bucket has no lifecycle configuration", "bucket", bucket)
		return nil, nil
	}

	raw, err := json.Marshal(attrs.Lifecycle.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lifecycle rules for bucket %q: %w", bucket, err)
	}

	return &lifecycle.Configuration{
		Raw:   raw,
		Rules: summarizeRules(attrs.Lifecycle.Rules),
	}, nil
}

func (g *GCSClient) PutLifecycle(ctx context.Context, bucket string, cfg *lifecycle.Configuration) error {
	if cfg.Empty() {
		return fmt.Errorf("refusing to put empty lifecycle configuration for bucket %q (use DeleteLifecycle)", bucket)
	}

	var rules []gcpstorage.LifecycleRule
	if err := json.Unmarshal(cfg.Raw, &rules); err != nil {
		return fmt.Errorf("failed to decode lifecycle rules for bucket %q: %w", bucket, err)
	}

	_, err := g.client.Bucket(bucket).Update(ctx, gcpstorage.BucketAttrsToUpdate{
		Lifecycle: &gcpstorage.Lifecycle{Rules: rules},
	})
	if err != nil {
		return &lifecycle.ProviderRequestError{
			Provider: common.GCP,
			Op:       "Bucket.Update",
			Bucket:   bucket,
			Err:      err,
		}
	}

	g.logger.Debug("Applied lifecycle configuration", "bucket", bucket, "rules", len(rules))
	return nil
}

func (g *GCSClient) DeleteLifecycle(ctx context.Context, bucket string) error {
	_, err := g.client.Bucket(bucket).Update(ctx, gcpstorage.BucketAttrsToUpdate{
		Lifecycle: &gcpstorage.Lifecycle{},
	})
	if err != nil {
		return &lifecycle.ProviderRequestError{
			Provider: common.GCP,
			Op:       "Bucket.Update",
			Bucket:   bucket,
			Err:      err,
		}
	}

	g.logger.Debug("Removed lifecycle configuration", "bucket", bucket)
	return nil
}

// DecodeLifecycle parses a GCS-schema rules array without any remote call.
// An empty array decodes to the nil sentinel.
func (g *GCSClient) DecodeLifecycle(raw []byte) (*lifecycle.Configuration, error) {
	var rules []gcpstorage.LifecycleRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("invalid GCS lifecycle rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, nil
	}

	return &lifecycle.Configuration{
		Raw:   raw,
		Rules: summarizeRules(rules),
	}, nil
}
