package lifecycle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationEmpty(t *testing.T) {
	var nilCfg *Configuration
	assert.True(t, nilCfg.Empty(), "nil configuration is the no-policy sentinel")

	assert.True(t, (&Configuration{Raw: json.RawMessage(`[]`)}).Empty())

	cfg := &Configuration{
		Raw:   json.RawMessage(`[{"ID":"r1"}]`),
		Rules: []RuleSummary{{ID: "r1", Status: "Enabled"}},
	}
	assert.False(t, cfg.Empty())
}

func TestRuleSummaryCompact(t *testing.T) {
	tests := []struct {
		name string
		rule RuleSummary
		want string
	}{
		{
			name: "expiration only",
			rule: RuleSummary{
				ID:             "expire-30d",
				Status:         "Enabled",
				Prefix:         "No Prefix",
				Transitions:    NotAvailable,
				ExpirationDays: "30",
			},
			want: "expire-30d [Enabled] prefix=No Prefix expire=30d",
		},
		{
			name: "transitions without expiration",
			rule: RuleSummary{
				ID:             "tiering",
				Status:         "Enabled",
				Transitions:    "30 days to GLACIER",
				ExpirationDays: NotAvailable,
			},
			want: "tiering [Enabled] transitions=30 days to GLACIER",
		},
		{
			name: "all placeholders",
			rule: RuleSummary{
				ID:             "No ID",
				Status:         "Disabled",
				Prefix:         NotAvailable,
				Transitions:    NotAvailable,
				ExpirationDays: NotAvailable,
			},
			want: "No ID [Disabled]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Compact())
		})
	}
}

func TestBucketPolicySummarize(t *testing.T) {
	noPolicy := BucketPolicy{Bucket: "empty"}
	assert.False(t, noPolicy.HasPolicy())
	assert.Equal(t, NotAvailable, noPolicy.Summarize())

	policy := BucketPolicy{
		Bucket: "multi",
		Config: &Configuration{
			Rules: []RuleSummary{
				{ID: "a", Status: "Enabled", ExpirationDays: "30"},
				{ID: "b", Status: "Disabled", ExpirationDays: NotAvailable},
			},
		},
	}
	assert.True(t, policy.HasPolicy())
	assert.Equal(t, "a [Enabled] expire=30d; b [Disabled]", policy.Summarize())
}
