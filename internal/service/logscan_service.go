package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rzz0/s3-lifecycle-manager/internal/config"
	"github.com/rzz0/s3-lifecycle-manager/internal/report"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

// LogScanService lists job-log object keys under a configured bucket/prefix
// and categorizes them into temporary and Spark-UI paths by pattern match.
type LogScanService struct {
	logger *slog.Logger
}

func NewLogScanService(logger *slog.Logger) *LogScanService {
	return &LogScanService{
		logger: logger.With("service", "LogScanService"),
	}
}

// Scan lists all keys under cfg.Prefix in cfg.Bucket and categorizes them.
func (s *LogScanService) Scan(ctx context.Context, client storage.Client, cfg config.LogScanConfig) ([]report.LogPath, error) {
	s.logger.Info("Scanning job-log paths", "bucket", cfg.Bucket, "prefix", cfg.Prefix)

	objects, err := client.ListObjects(ctx, cfg.Bucket, cfg.Prefix)
	if err != nil {
		s.logger.Error("Failed to list job-log objects", "bucket", cfg.Bucket, "error", err)
		return nil, err
	}

	paths := make([]report.LogPath, 0, len(objects))
	for _, obj := range objects {
		paths = append(paths, report.LogPath{
			Key:          obj.Key,
			Category:     categorize(obj.Key, cfg),
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	s.logger.Info("Finished scanning job-log paths", "count", len(paths))
	return paths, nil
}

func categorize(key string, cfg config.LogScanConfig) report.LogPathCategory {
	switch {
	case cfg.TempPattern != "" && strings.Contains(key, cfg.TempPattern):
		return report.CategoryTemporary
	case cfg.SparkUIPattern != "" && strings.Contains(key, cfg.SparkUIPattern):
		return report.CategorySparkUI
	default:
		return report.CategoryOther
	}
}
