package storage

import (
	"context"
	"time"

	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

// Client is the provider boundary: every operation is a single control-plane
// request (or a paginated loop of them) against one provider, except
// DecodeLifecycle which is purely local.
type Client interface {
	ProviderName() common.Provider

	// ListBuckets returns all buckets visible to the configured account, in
	// provider response order. An account with no buckets yields an empty
	// slice, not an error.
	ListBuckets(ctx context.Context) ([]Bucket, error)

	// GetLifecycle returns the bucket's lifecycle configuration, or (nil, nil)
	// when the provider reports that none is present.
	GetLifecycle(ctx context.Context, bucket string) (*lifecycle.Configuration, error)

	// PutLifecycle replaces the bucket's lifecycle configuration with cfg.
	// There is no merge; the provider call is atomic from this system's
	// perspective.
	PutLifecycle(ctx context.Context, bucket string, cfg *lifecycle.Configuration) error

	// DeleteLifecycle removes the bucket's lifecycle configuration entirely.
	DeleteLifecycle(ctx context.Context, bucket string) error

	// DecodeLifecycle parses a provider-schema rules array, as produced by
	// GetLifecycle and stored in backup files, without any remote call.
	DecodeLifecycle(raw []byte) (*lifecycle.Configuration, error)

	// ListObjects returns the object keys under prefix, following provider
	// pagination to completion.
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)

	Close() error
}

// Bucket is the locally tracked view of a remote bucket. Lifecycle state is
// owned entirely by the provider and never cached here.
type Bucket struct {
	Name      string
	Provider  common.Provider
	CreatedAt time.Time
}

// ObjectInfo describes one listed object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}
