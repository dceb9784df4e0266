package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rzz0/s3-lifecycle-manager/internal/config"
	"github.com/rzz0/s3-lifecycle-manager/internal/provider/registry"
	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

func init() {
	registry.RegisterProvider("aws", registry.ProviderRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
	})
}

// Checks if the AWS configuration block is present and the region is set
func isConfigured(cfg *config.Config) bool {
	return cfg.AWS != nil && cfg.AWS.Region != ""
}

// Initializes the S3 lifecycle client from the configuration
func initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Client, error) {
	if !isConfigured(cfg) {
		return nil, fmt.Errorf("AWS configuration missing or incomplete")
	}
	return NewS3Client(ctx, cfg.AWS, logger)
}

type S3Client struct {
	client *s3.Client
	logger *slog.Logger
}

var _ storage.Client = (*S3Client)(nil)

// NewS3Client builds an S3 client from the standard credential chain. A
// custom endpoint switches on path-style addressing, which S3-compatible
// services generally require.
func NewS3Client(ctx context.Context, awsCfg *config.AWSConfig, logger *slog.Logger) (*S3Client, error) {
	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(awsCfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if awsCfg.Endpoint != "" {
		client = s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(awsCfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
			o.UsePathStyle = awsCfg.PathStyle
		})
	}

	return &S3Client{
		client: client,
		logger: logger,
	}, nil
}

func (c *S3Client) ProviderName() common.Provider {
	return common.AWS
}

func (c *S3Client) Close() error {
	// The SDK client holds no resources that need explicit release
	return nil
}
