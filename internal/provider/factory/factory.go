package factory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rzz0/s3-lifecycle-manager/internal/config"
	"github.com/rzz0/s3-lifecycle-manager/internal/provider/registry"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

type Factory struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewFactory(cfg *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// Checks if a specific provider is registered and configured
func (f *Factory) IsConfigured(providerName string) bool {
	registration, exists := registry.GetRegistration(providerName)
	if !exists {
		return false
	}
	return registration.ConfigCheck(f.cfg)
}

// Initializes and returns the lifecycle client for the specified provider
func (f *Factory) GetClient(ctx context.Context, providerName string) (storage.Client, error) {
	normalizedName := strings.ToLower(providerName)
	providerLogger := f.logger.With("provider", normalizedName)

	registration, exists := registry.GetRegistration(normalizedName)
	if !exists {
		return nil, fmt.Errorf("unsupported provider: %s. Supported providers are: %v", providerName, registry.GetSupportedProviders())
	}

	if !registration.ConfigCheck(f.cfg) {
		return nil, fmt.Errorf("provider '%s' is not configured. Use 's3lifecycle config set %s.<key> <value>' (e.g., 'aws.region' or 'gcp.project')", normalizedName, normalizedName)
	}

	client, err := registration.Initializer(ctx, f.cfg, providerLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider %s: %w", normalizedName, err)
	}

	return client, nil
}
