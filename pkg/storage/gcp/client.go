package gcp

import (
	"context"
	"fmt"
	"log/slog"

	gcpstorage "cloud.google.com/go/storage"

	"github.com/rzz0/s3-lifecycle-manager/internal/config"
	"github.com/rzz0/s3-lifecycle-manager/internal/provider/registry"
	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

func init() {
	registry.RegisterProvider("gcp", registry.ProviderRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
	})
}

// Checks if the GCP configuration block is present and the project ID is set
func isConfigured(cfg *config.Config) bool {
	return cfg.GCP != nil && cfg.GCP.Project != ""
}

// Initializes the GCS lifecycle client from the configuration
func initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Client, error) {
	if !isConfigured(cfg) {
		return nil, fmt.Errorf("GCP configuration missing or incomplete")
	}
	return NewGCSClient(ctx, cfg.GCP.Project, logger)
}

type GCSClient struct {
	client    *gcpstorage.Client
	projectID string
	logger    *slog.Logger
}

var _ storage.Client = (*GCSClient)(nil)

func NewGCSClient(ctx context.Context, projectID string, logger *slog.Logger) (*GCSClient, error) {
	client, err := gcpstorage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client:    client,
		projectID: projectID,
		logger:    logger,
	}, nil
}

func (g *GCSClient) ProviderName() common.Provider {
	return common.GCP
}

func (g *GCSClient) Close() error {
	return g.client.Close()
}
