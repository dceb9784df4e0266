package gcp

import (
	"testing"

	gcpstorage "cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

func TestSummarizeRuleActions(t *testing.T) {
	tests := []struct {
		name  string
		rule  gcpstorage.LifecycleRule
		check func(t *testing.T, s lifecycle.RuleSummary)
	}{
		{
			name: "delete by age",
			rule: gcpstorage.LifecycleRule{
				Action:    gcpstorage.LifecycleAction{Type: gcpstorage.DeleteAction},
				Condition: gcpstorage.LifecycleCondition{AgeInDays: 30},
			},
			check: func(t *testing.T, s lifecycle.RuleSummary) {
				assert.Equal(t, "30", s.ExpirationDays)
				assert.Equal(t, lifecycle.NotAvailable, s.NoncurrentExpirationDays)
			},
		},
		{
			name: "delete noncurrent versions",
			rule: gcpstorage.LifecycleRule{
				Action:    gcpstorage.LifecycleAction{Type: gcpstorage.DeleteAction},
				Condition: gcpstorage.LifecycleCondition{AgeInDays: 14, NumNewerVersions: 3},
			},
			check: func(t *testing.T, s lifecycle.RuleSummary) {
				assert.Equal(t, "14", s.NoncurrentExpirationDays)
				assert.Equal(t, lifecycle.NotAvailable, s.ExpirationDays)
			},
		},
		{
			name: "storage class transition",
			rule: gcpstorage.LifecycleRule{
				Action: gcpstorage.LifecycleAction{
					Type:         gcpstorage.SetStorageClassAction,
					StorageClass: "COLDLINE",
				},
				Condition: gcpstorage.LifecycleCondition{AgeInDays: 90},
			},
			check: func(t *testing.T, s lifecycle.RuleSummary) {
				assert.Equal(t, "90 days to COLDLINE", s.Transitions)
			},
		},
		{
			name: "abort incomplete multipart uploads",
			rule: gcpstorage.LifecycleRule{
				Action:    gcpstorage.LifecycleAction{Type: gcpstorage.AbortIncompleteMPUAction},
				Condition: gcpstorage.LifecycleCondition{AgeInDays: 7},
			},
			check: func(t *testing.T, s lifecycle.RuleSummary) {
				assert.Equal(t, "7", s.AbortMultipartDays)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarizeRule(tt.rule)
			assert.Equal(t, "No ID", s.ID)
			assert.Equal(t, "Enabled", s.Status)
			tt.check(t, s)
		})
	}
}

func TestSummarizeCondition(t *testing.T) {
	assert.Equal(t, "No Prefix", summarizeCondition(gcpstorage.LifecycleCondition{}))
	assert.Equal(t, "logs/, tmp/", summarizeCondition(gcpstorage.LifecycleCondition{
		MatchesPrefix: []string{"logs/", "tmp/"},
	}))
}
