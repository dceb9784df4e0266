package aws

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

func TestSummarizeRuleExpiration(t *testing.T) {
	rule := types.LifecycleRule{
		ID:     aws.String("expire-30d"),
		Status: types.ExpirationStatusEnabled,
		Filter: &types.LifecycleRuleFilter{Prefix: aws.String("")},
		Expiration: &types.LifecycleExpiration{
			Days: aws.Int32(30),
		},
	}

	s := summarizeRule(rule)
	assert.Equal(t, "expire-30d", s.ID)
	assert.Equal(t, "Enabled", s.Status)
	assert.Equal(t, "No Prefix", s.Prefix)
	assert.Equal(t, "30", s.ExpirationDays)
	assert.Equal(t, lifecycle.NotAvailable, s.Transitions)
	assert.Equal(t, lifecycle.NotAvailable, s.NoncurrentExpirationDays)
	assert.Equal(t, lifecycle.NotAvailable, s.AbortMultipartDays)
}

func TestSummarizeRuleDefaults(t *testing.T) {
	s := summarizeRule(types.LifecycleRule{})
	assert.Equal(t, "No ID", s.ID)
	assert.Equal(t, "Unknown", s.Status)
	assert.Equal(t, "No Prefix", s.Prefix)
	assert.Equal(t, lifecycle.NotAvailable, s.ExpirationDays)
}

func TestSummarizeRuleTransitions(t *testing.T) {
	rule := types.LifecycleRule{
		ID:     aws.String("tiering"),
		Status: types.ExpirationStatusEnabled,
		Transitions: []types.Transition{
			{Days: aws.Int32(30), StorageClass: types.TransitionStorageClassStandardIa},
			{Days: aws.Int32(90), StorageClass: types.TransitionStorageClassGlacier},
		},
		NoncurrentVersionTransitions: []types.NoncurrentVersionTransition{
			{NoncurrentDays: aws.Int32(60), StorageClass: types.TransitionStorageClassGlacier},
		},
		NoncurrentVersionExpiration: &types.NoncurrentVersionExpiration{
			NoncurrentDays: aws.Int32(365),
		},
		AbortIncompleteMultipartUpload: &types.AbortIncompleteMultipartUpload{
			DaysAfterInitiation: aws.Int32(7),
		},
	}

	s := summarizeRule(rule)
	assert.Equal(t, "30 days to STANDARD_IA, 90 days to GLACIER", s.Transitions)
	assert.Equal(t, "60 days to GLACIER", s.NoncurrentTransitions)
	assert.Equal(t, "365", s.NoncurrentExpirationDays)
	assert.Equal(t, "7", s.AbortMultipartDays)
}

func TestSummarizeFilterVariants(t *testing.T) {
	tests := []struct {
		name         string
		filter       *types.LifecycleRuleFilter
		legacyPrefix *string
		want         string
	}{
		{
			name:   "filter prefix",
			filter: &types.LifecycleRuleFilter{Prefix: aws.String("logs/")},
			want:   "logs/",
		},
		{
			name: "and prefix",
			filter: &types.LifecycleRuleFilter{
				And: &types.LifecycleRuleAndOperator{Prefix: aws.String("data/")},
			},
			want: "data/",
		},
		{
			name:         "legacy prefix",
			legacyPrefix: aws.String("old/"),
			want:         "old/",
		},
		{
			name: "tag appended",
			filter: &types.LifecycleRuleFilter{
				Prefix: aws.String("tmp/"),
				Tag:    &types.Tag{Key: aws.String("env"), Value: aws.String("dev")},
			},
			want: "tmp/, Tag: env=dev",
		},
		{
			name: "nothing set",
			want: "No Prefix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarizeFilter(tt.filter, tt.legacyPrefix))
		})
	}
}

func TestSummarizeExpirationDate(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	got := summarizeExpiration(&types.LifecycleExpiration{Date: &date})
	assert.Equal(t, "2026-01-15", got)

	marker := summarizeExpiration(&types.LifecycleExpiration{
		ExpiredObjectDeleteMarker: aws.Bool(true),
	})
	assert.Equal(t, "ExpiredObjectDeleteMarker", marker)
}

func TestDecodeLifecycle(t *testing.T) {
	c := &S3Client{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	t.Run("valid rules", func(t *testing.T) {
		raw := []byte(`[{"ID":"expire-30d","Status":"Enabled","Expiration":{"Days":30}}]`)
		cfg, err := c.DecodeLifecycle(raw)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Len(t, cfg.Rules, 1)
		assert.Equal(t, "expire-30d", cfg.Rules[0].ID)
		assert.Equal(t, "30", cfg.Rules[0].ExpirationDays)
		assert.Equal(t, raw, []byte(cfg.Raw), "decoding must not alter the stored bytes")
	})

	t.Run("empty array is the nil sentinel", func(t *testing.T) {
		cfg, err := c.DecodeLifecycle([]byte(`[]`))
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := c.DecodeLifecycle([]byte(`{"not":"an array"`))
		require.Error(t, err)
	})
}
