package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rzz0/s3-lifecycle-manager/internal/backup"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

// BackupService exports lifecycle configurations to per-bucket backup files
// and restores them. Restore decodes the file locally before touching the
// provider, so a malformed backup never causes a remote write.
type BackupService struct {
	store  *backup.Store
	logger *slog.Logger
}

func NewBackupService(store *backup.Store, logger *slog.Logger) *BackupService {
	return &BackupService{
		store:  store,
		logger: logger.With("service", "BackupService"),
	}
}

// Export writes one backup file per policy, including the empty sentinel for
// buckets without a configuration. Returns the paths written; per-bucket
// failures are joined and returned after all buckets were attempted.
func (s *BackupService) Export(policies []lifecycle.BucketPolicy) ([]string, error) {
	var paths []string
	var errs []error

	for _, p := range policies {
		var raw []byte
		if p.Config != nil {
			raw = p.Config.Raw
		}

		path, err := s.store.Write(p.Bucket, raw)
		if err != nil {
			s.logger.Error("Failed to write backup file", "bucket", p.Bucket, "error", err)
			errs = append(errs, err)
			continue
		}

		if p.HasPolicy() {
			s.logger.Info("Exported lifecycle policy", "bucket", p.Bucket, "path", path)
		} else {
			s.logger.Info("Exported empty lifecycle sentinel", "bucket", p.Bucket, "path", path)
		}
		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}

// Restore reads the bucket's backup file and re-applies it as the bucket's
// lifecycle configuration, fully replacing whatever is currently set. An
// empty sentinel backup clears the configuration instead, since providers
// reject rule-less puts.
func (s *BackupService) Restore(ctx context.Context, client storage.Client, bucket string) error {
	raw, path, err := s.store.Read(bucket)
	if err != nil {
		return err
	}

	cfg, err := client.DecodeLifecycle(raw)
	if err != nil {
		return &lifecycle.BackupFormatError{Path: path, Err: err}
	}

	if cfg.Empty() {
		if err := client.DeleteLifecycle(ctx, bucket); err != nil {
			return err
		}
		s.logger.Info("Restored empty lifecycle configuration (cleared)", "bucket", bucket, "path", path)
		return nil
	}

	if err := client.PutLifecycle(ctx, bucket, cfg); err != nil {
		return err
	}

	s.logger.Info("Restored lifecycle policy", "bucket", bucket, "path", path, "rules", len(cfg.Rules))
	return nil
}

// ListBackups returns the bucket names with a backup file in the store.
func (s *BackupService) ListBackups() ([]string, error) {
	return s.store.List()
}
