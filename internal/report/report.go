package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

// LogPathCategory classifies a job-log object key by its path pattern.
type LogPathCategory string

const (
	CategoryTemporary LogPathCategory = "temporary"
	CategorySparkUI   LogPathCategory = "spark-ui"
	CategoryOther     LogPathCategory = "other"
)

// LogPath is one categorized job-log object key.
type LogPath struct {
	Key          string
	Category     LogPathCategory
	Size         int64
	LastModified time.Time
}

// WritePolicyReport writes the per-bucket lifecycle report: exactly one row
// per bucket with the name, a policy-present flag, and the flattened rule
// summary (or N/A for buckets without a policy).
func WritePolicyReport(path string, policies []lifecycle.BucketPolicy) error {
	file, err := os.Create(path)
	if err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Bucket", "PolicyPresent", "Rules"}); err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}

	for _, p := range policies {
		row := []string{
			p.Bucket,
			strconv.FormatBool(p.HasPolicy()),
			p.Summarize(),
		}
		if err := w.Write(row); err != nil {
			return &lifecycle.StorageIOError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}
	return nil
}

// WriteLogPathReport writes the categorized job-log key listing.
func WriteLogPathReport(path string, paths []LogPath) error {
	file, err := os.Create(path)
	if err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Key", "Category", "Size", "LastModified"}); err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}

	for _, p := range paths {
		row := []string{
			p.Key,
			string(p.Category),
			fmt.Sprintf("%d", p.Size),
			p.LastModified.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return &lifecycle.StorageIOError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &lifecycle.StorageIOError{Path: path, Err: err}
	}
	return nil
}
