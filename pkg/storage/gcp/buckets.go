package gcp

import (
	"context"

	gcpstorage "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

func (g *GCSClient) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	g.logger.Debug("Starting GCS ListBuckets operation")

	var buckets []storage.Bucket
	it := g.client.Buckets(ctx, g.projectID)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &lifecycle.ProviderRequestError{
				Provider: common.GCP,
				Op:       "Buckets.Next",
				Err:      err,
			}
		}
		buckets = append(buckets, storage.Bucket{
			Name:      attrs.Name,
			Provider:  common.GCP,
			CreatedAt: attrs.Created,
		})
	}

	g.logger.Debug("Finished GCS ListBuckets operation", "count", len(buckets))
	return buckets, nil
}

func (g *GCSClient) ListObjects(ctx context.Context, bucket, prefix string) ([]storage.ObjectInfo, error) {
	g.logger.Debug("Starting GCS ListObjects operation", "bucket", bucket, "prefix", prefix)

	var objects []storage.ObjectInfo
	it := g.client.Bucket(bucket).Objects(ctx, &gcpstorage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &lifecycle.ProviderRequestError{
				Provider: common.GCP,
				Op:       "Objects.Next",
				Bucket:   bucket,
				Err:      err,
			}
		}
		objects = append(objects, storage.ObjectInfo{
			Key:          attrs.Name,
			Size:         attrs.Size,
			LastModified: attrs.Updated,
		})
	}

	return objects, nil
}
