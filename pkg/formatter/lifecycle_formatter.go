package formatter

import (
	"strconv"

	"github.com/rzz0/s3-lifecycle-manager/internal/report"
	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

type LifecycleFormatter struct{}

func NewLifecycleFormatter() *LifecycleFormatter {
	return &LifecycleFormatter{}
}

// FormatPolicyList renders the per-bucket summary shown after a backup run.
func (f *LifecycleFormatter) FormatPolicyList(policies []lifecycle.BucketPolicy) string {
	table := NewTable([]string{"BUCKET", "POLICY", "RULES"})

	for _, p := range policies {
		ruleCount := "0"
		if p.HasPolicy() {
			ruleCount = strconv.Itoa(len(p.Config.Rules))
		}
		table.AddRow([]string{
			p.Bucket,
			strconv.FormatBool(p.HasPolicy()),
			ruleCount,
		})
	}

	return table.String()
}

// FormatLogPaths renders the categorized job-log listing.
func (f *LifecycleFormatter) FormatLogPaths(paths []report.LogPath) string {
	table := NewTable([]string{"KEY", "CATEGORY"})

	for _, p := range paths {
		table.AddRow([]string{p.Key, string(p.Category)})
	}

	return table.String()
}
