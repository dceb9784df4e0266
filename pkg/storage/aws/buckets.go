package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

func (c *S3Client) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	c.logger.Debug("Starting S3 ListBuckets operation")

	var buckets []storage.Bucket
	paginator := s3.NewListBucketsPaginator(c.client, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &lifecycle.ProviderRequestError{
				Provider: common.AWS,
				Op:       "ListBuckets",
				Err:      err,
			}
		}
		for _, b := range page.Buckets {
			bucket := storage.Bucket{
				Name:     aws.ToString(b.Name),
				Provider: common.AWS,
			}
			if b.CreationDate != nil {
				bucket.CreatedAt = *b.CreationDate
			}
			buckets = append(buckets, bucket)
		}
	}

	c.logger.Debug("Finished S3 ListBuckets operation", "count", len(buckets))
	return buckets, nil
}

func (c *S3Client) ListObjects(ctx context.Context, bucket, prefix string) ([]storage.ObjectInfo, error) {
	c.logger.Debug("Starting S3 ListObjects operation", "bucket", bucket, "prefix", prefix)

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []storage.ObjectInfo
	paginator := s3.NewListObjectsV2Paginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &lifecycle.ProviderRequestError{
				Provider: common.AWS,
				Op:       "ListObjectsV2",
				Bucket:   bucket,
				Err:      err,
			}
		}
		for _, obj := range page.Contents {
			info := storage.ObjectInfo{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				info.LastModified = *obj.LastModified
			}
			objects = append(objects, info)
		}
	}

	return objects, nil
}
