package gcp

import (
	"fmt"
	"strings"

	gcpstorage "cloud.google.com/go/storage"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

// summarizeRules flattens GCS lifecycle rules into report rows. GCS rules
// have no ID or enable/disable status, and a rule carries exactly one action,
// so the row shape degrades gracefully to N/A where S3 concepts don't apply.
func summarizeRules(rules []gcpstorage.LifecycleRule) []lifecycle.RuleSummary {
	if len(rules) == 0 {
		return nil
	}
	result := make([]lifecycle.RuleSummary, 0, len(rules))
	for _, r := range rules {
		result = append(result, summarizeRule(r))
	}
	return result
}

func summarizeRule(r gcpstorage.LifecycleRule) lifecycle.RuleSummary {
	s := lifecycle.RuleSummary{
		ID:                       "No ID",
		Status:                   "Enabled",
		Prefix:                   summarizeCondition(r.Condition),
		Transitions:              lifecycle.NotAvailable,
		ExpirationDays:           lifecycle.NotAvailable,
		NoncurrentTransitions:    lifecycle.NotAvailable,
		NoncurrentExpirationDays: lifecycle.NotAvailable,
		AbortMultipartDays:       lifecycle.NotAvailable,
	}

	switch r.Action.Type {
	case gcpstorage.SetStorageClassAction:
		s.Transitions = fmt.Sprintf("%d days to %s", r.Condition.AgeInDays, r.Action.StorageClass)
	case gcpstorage.DeleteAction:
		if r.Condition.NumNewerVersions > 0 {
			s.NoncurrentExpirationDays = fmt.Sprintf("%d", r.Condition.AgeInDays)
		} else {
			s.ExpirationDays = fmt.Sprintf("%d", r.Condition.AgeInDays)
		}
	case gcpstorage.AbortIncompleteMPUAction:
		s.AbortMultipartDays = fmt.Sprintf("%d", r.Condition.AgeInDays)
	}

	return s
}

func summarizeCondition(c gcpstorage.LifecycleCondition) string {
	if len(c.MatchesPrefix) == 0 {
		return "No Prefix"
	}
	return strings.Join(c.MatchesPrefix, ", ")
}
