package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/rzz0/s3-lifecycle-manager/internal/auth"
	"github.com/rzz0/s3-lifecycle-manager/internal/config"
	"github.com/rzz0/s3-lifecycle-manager/internal/provider/factory"
	"github.com/rzz0/s3-lifecycle-manager/internal/service"
	"github.com/rzz0/s3-lifecycle-manager/internal/ui/prompt"
	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/formatter"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

// appContainer holds all the shared dependencies for the application
// This includes configuration, services, the formatter, and the logger
type appContainer struct {
	Config           *config.Config
	ConfigManager    *config.ConfigManager
	ProviderFactory  *factory.Factory
	LifecycleService *service.LifecycleService
	LogScanService   *service.LogScanService
	Formatter        *formatter.LifecycleFormatter
	Prompter         prompt.Prompter
	Logger           *slog.Logger
}

// Creates and initializes a new application container
func newApp(logger *slog.Logger) (*appContainer, error) {
	cfgManager, err := config.NewConfigManager()
	if err != nil {
		return nil, err
	}

	cfg, err := cfgManager.LoadConfig()
	if err != nil {
		return nil, err
	}

	return &appContainer{
		Config:           cfg,
		ConfigManager:    cfgManager,
		ProviderFactory:  factory.NewFactory(cfg, logger),
		LifecycleService: service.NewLifecycleService(logger),
		LogScanService:   service.NewLogScanService(logger),
		Formatter:        formatter.NewLifecycleFormatter(),
		Prompter:         prompt.NewStandardPrompter(os.Stdin, os.Stdout),
		Logger:           logger,
	}, nil
}

// resolveProvider applies the flag override on top of the configured default
func (app *appContainer) resolveProvider(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return app.Config.Provider
}

// getClient bootstraps credentials where needed and initializes the
// lifecycle client for the provider
func (app *appContainer) getClient(ctx context.Context, providerName string) (storage.Client, error) {
	if providerName == string(common.AWS) && app.Config.AWS != nil {
		if err := auth.EnsureCredentials(ctx, app.Config.AWS.Region, app.Prompter, app.Logger); err != nil {
			return nil, err
		}
	}
	return app.ProviderFactory.GetClient(ctx, providerName)
}
