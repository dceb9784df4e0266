package backup

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

const backupFileSuffix = "_lifecycle_backup.json"

// emptySentinel is written for buckets that have no lifecycle configuration,
// so a restore can distinguish "never backed up" from "backed up as empty".
var emptySentinel = []byte("[]")

// Store keeps one backup file per bucket in a local directory. File naming is
// deterministic from the bucket name; later writes overwrite earlier ones.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) the backup directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &lifecycle.StorageIOError{Path: dir, Err: err}
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backup directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the backup file path for a bucket.
func (s *Store) Path(bucket string) string {
	return filepath.Join(s.dir, bucket+backupFileSuffix)
}

// Write persists the provider-schema rules array for a bucket, indented for
// readability. A nil or empty raw writes the empty sentinel. Returns the path
// written.
func (s *Store) Write(bucket string, raw []byte) (string, error) {
	path := s.Path(bucket)

	if len(raw) == 0 {
		raw = emptySentinel
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		// Raw came straight from a provider response; an indent failure
		// means the caller handed over something that was never JSON.
		return "", &lifecycle.BackupFormatError{Path: path, Err: err}
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", &lifecycle.StorageIOError{Path: path, Err: err}
	}
	return path, nil
}

// Read returns the stored rules array for a bucket and the path it was read
// from. A missing file is a BackupNotFoundError.
func (s *Store) Read(bucket string) ([]byte, string, error) {
	path := s.Path(bucket)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, path, &lifecycle.BackupNotFoundError{Bucket: bucket, Path: path}
		}
		return nil, path, &lifecycle.StorageIOError{Path: path, Err: err}
	}
	return raw, path, nil
}

// List returns the bucket names that have a backup file in the directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &lifecycle.StorageIOError{Path: s.dir, Err: err}
	}

	var buckets []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), backupFileSuffix) {
			continue
		}
		buckets = append(buckets, strings.TrimSuffix(e.Name(), backupFileSuffix))
	}
	return buckets, nil
}
