package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

// LifecycleService reads lifecycle configurations bucket by bucket, strictly
// sequentially and in enumeration order. A failed bucket is logged and
// skipped; the run continues and the joined errors are returned at the end.
type LifecycleService struct {
	logger *slog.Logger
}

func NewLifecycleService(logger *slog.Logger) *LifecycleService {
	return &LifecycleService{
		logger: logger.With("service", "LifecycleService"),
	}
}

// CollectPolicies fetches the lifecycle configuration of each named bucket.
// With no names given, it enumerates all buckets visible to the account.
// The returned slice holds one entry per successfully processed bucket;
// buckets without a configuration appear with a nil Config.
func (s *LifecycleService) CollectPolicies(ctx context.Context, client storage.Client, bucketNames []string) ([]lifecycle.BucketPolicy, error) {
	if len(bucketNames) == 0 {
		buckets, err := client.ListBuckets(ctx)
		if err != nil {
			s.logger.Error("Failed to list buckets", "error", err)
			return nil, err
		}
		s.logger.Info("Buckets found", "count", len(buckets))
		for _, b := range buckets {
			bucketNames = append(bucketNames, b.Name)
		}
	}

	var policies []lifecycle.BucketPolicy
	var errs []error

	s.logger.Info("Starting to process buckets for lifecycle policies")
	for _, name := range bucketNames {
		s.logger.Info("Processing bucket", "bucket", name)

		cfg, err := client.GetLifecycle(ctx, name)
		if err != nil {
			s.logger.Error("Unable to get the lifecycle policy", "bucket", name, "error", err)
			errs = append(errs, err)
			continue
		}

		policies = append(policies, lifecycle.BucketPolicy{
			Bucket: name,
			Config: cfg,
		})
	}
	s.logger.Info("Finished processing buckets for lifecycle policies", "processed", len(policies), "failed", len(errs))

	return policies, errors.Join(errs...)
}
