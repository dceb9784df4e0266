package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzz0/s3-lifecycle-manager/internal/backup"
	"github.com/rzz0/s3-lifecycle-manager/internal/config"
	"github.com/rzz0/s3-lifecycle-manager/internal/report"
	"github.com/rzz0/s3-lifecycle-manager/internal/service"
	"github.com/rzz0/s3-lifecycle-manager/pkg/common"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
	"github.com/rzz0/s3-lifecycle-manager/pkg/storage"
)

// fakeClient is an in-memory storage.Client whose lifecycle state is a map
// from bucket name to the provider-schema rules array.
type fakeClient struct {
	buckets     []storage.Bucket
	configs     map[string]json.RawMessage
	getErr      map[string]error
	objects     []storage.ObjectInfo
	putCalls    map[string]json.RawMessage
	deleteCalls []string
	remoteCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		configs:  make(map[string]json.RawMessage),
		getErr:   make(map[string]error),
		putCalls: make(map[string]json.RawMessage),
	}
}

func (f *fakeClient) ProviderName() common.Provider { return common.AWS }

func (f *fakeClient) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	f.remoteCalls++
	return f.buckets, nil
}

func (f *fakeClient) GetLifecycle(ctx context.Context, bucket string) (*lifecycle.Configuration, error) {
	f.remoteCalls++
	if err := f.getErr[bucket]; err != nil {
		return nil, err
	}
	raw, ok := f.configs[bucket]
	if !ok {
		return nil, nil
	}
	return f.DecodeLifecycle(raw)
}

func (f *fakeClient) PutLifecycle(ctx context.Context, bucket string, cfg *lifecycle.Configuration) error {
	f.remoteCalls++
	f.putCalls[bucket] = cfg.Raw
	f.configs[bucket] = cfg.Raw
	return nil
}

func (f *fakeClient) DeleteLifecycle(ctx context.Context, bucket string) error {
	f.remoteCalls++
	f.deleteCalls = append(f.deleteCalls, bucket)
	delete(f.configs, bucket)
	return nil
}

func (f *fakeClient) DecodeLifecycle(raw []byte) (*lifecycle.Configuration, error) {
	var rules []map[string]any
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("invalid lifecycle rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, nil
	}
	summaries := make([]lifecycle.RuleSummary, 0, len(rules))
	for _, r := range rules {
		id, _ := r["ID"].(string)
		status, _ := r["Status"].(string)
		summaries = append(summaries, lifecycle.RuleSummary{ID: id, Status: status})
	}
	return &lifecycle.Configuration{Raw: raw, Rules: summaries}, nil
}

func (f *fakeClient) ListObjects(ctx context.Context, bucket, prefix string) ([]storage.ObjectInfo, error) {
	f.remoteCalls++
	return f.objects, nil
}

func (f *fakeClient) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const expireRule = `[{"ID":"expire-30d","Status":"Enabled","Filter":{"Prefix":""},"Expiration":{"Days":30}}]`

func TestCollectPoliciesEnumeratesWhenNoNamesGiven(t *testing.T) {
	client := newFakeClient()
	client.buckets = []storage.Bucket{
		{Name: "logs-archive", Provider: common.AWS},
		{Name: "no-policy-bucket", Provider: common.AWS},
	}
	client.configs["logs-archive"] = json.RawMessage(expireRule)

	svc := service.NewLifecycleService(testLogger())
	policies, err := svc.CollectPolicies(context.Background(), client, nil)
	require.NoError(t, err)
	require.Len(t, policies, 2)

	assert.Equal(t, "logs-archive", policies[0].Bucket)
	assert.True(t, policies[0].HasPolicy())
	assert.Equal(t, "expire-30d", policies[0].Config.Rules[0].ID)

	assert.Equal(t, "no-policy-bucket", policies[1].Bucket)
	assert.False(t, policies[1].HasPolicy())
	assert.Nil(t, policies[1].Config, "absence of a configuration is not an error")
}

func TestCollectPoliciesContinuesPastFailedBucket(t *testing.T) {
	client := newFakeClient()
	client.configs["good"] = json.RawMessage(expireRule)
	client.getErr["bad"] = &lifecycle.ProviderRequestError{
		Provider: common.AWS,
		Op:       "GetBucketLifecycleConfiguration",
		Bucket:   "bad",
		Err:      errors.New("access denied"),
	}

	svc := service.NewLifecycleService(testLogger())
	policies, err := svc.CollectPolicies(context.Background(), client, []string{"bad", "good"})

	require.Error(t, err, "the failed bucket must surface in the run result")
	var reqErr *lifecycle.ProviderRequestError
	assert.True(t, errors.As(err, &reqErr))

	require.Len(t, policies, 1, "processing continues past the failure")
	assert.Equal(t, "good", policies[0].Bucket)
}

func TestExportWritesSentinelForPolicylessBuckets(t *testing.T) {
	store, err := backup.NewStore(t.TempDir())
	require.NoError(t, err)
	svc := service.NewBackupService(store, testLogger())

	paths, err := svc.Export([]lifecycle.BucketPolicy{
		{Bucket: "with-policy", Config: &lifecycle.Configuration{
			Raw:   json.RawMessage(expireRule),
			Rules: []lifecycle.RuleSummary{{ID: "expire-30d", Status: "Enabled"}},
		}},
		{Bucket: "without-policy", Config: nil},
	})
	require.NoError(t, err)
	require.Len(t, paths, 2, "a bucket without a policy still gets a backup file")

	raw, _, err := store.Read("without-policy")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	client := newFakeClient()
	client.configs["logs-archive"] = json.RawMessage(expireRule)

	store, err := backup.NewStore(t.TempDir())
	require.NoError(t, err)

	lifecycleSvc := service.NewLifecycleService(testLogger())
	backupSvc := service.NewBackupService(store, testLogger())

	policies, err := lifecycleSvc.CollectPolicies(context.Background(), client, []string{"logs-archive"})
	require.NoError(t, err)
	_, err = backupSvc.Export(policies)
	require.NoError(t, err)

	// Restore onto a bucket that currently has no policy
	require.NoError(t, backupSvc.Restore(context.Background(), client, "logs-archive"))

	restored, ok := client.putCalls["logs-archive"]
	require.True(t, ok, "restore must submit the configuration to the provider")
	assert.JSONEq(t, expireRule, string(restored), "restored rules must match what was read originally")
}

func TestRestoreMissingBackupMakesNoRemoteCall(t *testing.T) {
	client := newFakeClient()
	store, err := backup.NewStore(t.TempDir())
	require.NoError(t, err)
	svc := service.NewBackupService(store, testLogger())

	err = svc.Restore(context.Background(), client, "never-backed-up")
	var notFound *lifecycle.BackupNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "never-backed-up", notFound.Bucket)
	assert.Zero(t, client.remoteCalls, "no remote write may happen without a backup file")
}

func TestRestoreMalformedBackupMakesNoRemoteCall(t *testing.T) {
	client := newFakeClient()
	dir := t.TempDir()
	store, err := backup.NewStore(dir)
	require.NoError(t, err)

	// Corrupt the backup file behind the store's back
	raw := []byte(`{"Rules": "this is not a rules array"`)
	require.NoError(t, os.WriteFile(store.Path("broken"), raw, 0644))

	svc := service.NewBackupService(store, testLogger())
	err = svc.Restore(context.Background(), client, "broken")

	var formatErr *lifecycle.BackupFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Zero(t, client.remoteCalls, "a malformed backup must fail before any remote call")
}

func TestRestoreEmptySentinelClearsConfiguration(t *testing.T) {
	client := newFakeClient()
	client.configs["bucket"] = json.RawMessage(expireRule)

	store, err := backup.NewStore(t.TempDir())
	require.NoError(t, err)
	_, err = store.Write("bucket", nil)
	require.NoError(t, err)

	svc := service.NewBackupService(store, testLogger())
	require.NoError(t, svc.Restore(context.Background(), client, "bucket"))

	assert.Contains(t, client.deleteCalls, "bucket")
	assert.Empty(t, client.putCalls, "an empty sentinel must clear, not put")
}

func TestLogScanCategorizesKeys(t *testing.T) {
	client := newFakeClient()
	client.objects = []storage.ObjectInfo{
		{Key: "glue/jobs/temporary/part-0000", Size: 10},
		{Key: "glue/jobs/sparkHistoryLogs/app-1", Size: 20},
		{Key: "glue/jobs/scripts/job.py", Size: 30},
	}

	svc := service.NewLogScanService(testLogger())
	paths, err := svc.Scan(context.Background(), client, config.LogScanConfig{
		Bucket:         "job-logs",
		Prefix:         "glue/",
		TempPattern:    "temporary/",
		SparkUIPattern: "sparkHistoryLogs/",
	})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, report.CategoryTemporary, paths[0].Category)
	assert.Equal(t, report.CategorySparkUI, paths[1].Category)
	assert.Equal(t, report.CategoryOther, paths[2].Category)
}
