package lifecycle

import (
	"fmt"

	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
)

// ProviderRequestError wraps any failed remote call: auth, not-found,
// throttling, validation. None of these are retried; the caller decides
// whether to continue with the next bucket or abort.
type ProviderRequestError struct {
	Provider common.Provider
	Op       string
	Bucket   string
	Err      error
}

func (e *ProviderRequestError) Error() string {
	if e.Bucket == "" {
		return fmt.Sprintf("%s: %s failed: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s failed for bucket %q: %v", e.Provider, e.Op, e.Bucket, e.Err)
}

func (e *ProviderRequestError) Unwrap() error {
	return e.Err
}

// StorageIOError wraps a local filesystem failure (permissions, disk full).
type StorageIOError struct {
	Path string
	Err  error
}

func (e *StorageIOError) Error() string {
	return fmt.Sprintf("storage i/o failure on %s: %v", e.Path, e.Err)
}

func (e *StorageIOError) Unwrap() error {
	return e.Err
}

// BackupNotFoundError reports a restore request for a bucket that has no
// backup file in the backup directory. Fatal for the restore; no remote
// write is attempted.
type BackupNotFoundError struct {
	Bucket string
	Path   string
}

func (e *BackupNotFoundError) Error() string {
	return fmt.Sprintf("no backup found for bucket %q (expected %s)", e.Bucket, e.Path)
}

// BackupFormatError reports backup file content that cannot be decoded into
// a lifecycle configuration. Raised before any remote call is made.
type BackupFormatError struct {
	Path string
	Err  error
}

func (e *BackupFormatError) Error() string {
	return fmt.Sprintf("backup file %s is not a valid lifecycle configuration: %v", e.Path, e.Err)
}

func (e *BackupFormatError) Unwrap() error {
	return e.Err
}
