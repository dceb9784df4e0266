package aws

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/rzz0/s3-lifecycle-manager/pkg/lifecycle"
)

// summarizeRules flattens S3 lifecycle rules into report rows. Attribute
// values are pre-rendered strings with N/A placeholders.
func summarizeRules(rules []types.LifecycleRule) []lifecycle.RuleSummary {
	if len(rules) == 0 {
		return nil
	}
	result := make([]lifecycle.RuleSummary, 0, len(rules))
	for _, r := range rules {
		result = append(result, summarizeRule(r))
	}
	return result
}

func summarizeRule(r types.LifecycleRule) lifecycle.RuleSummary {
	s := lifecycle.RuleSummary{
		ID:                       stringOr(r.ID, "No ID"),
		Status:                   string(r.Status),
		Prefix:                   summarizeFilter(r.Filter, r.Prefix),
		Transitions:              summarizeTransitions(r.Transitions),
		ExpirationDays:           summarizeExpiration(r.Expiration),
		NoncurrentTransitions:    summarizeNoncurrentTransitions(r.NoncurrentVersionTransitions),
		NoncurrentExpirationDays: lifecycle.NotAvailable,
		AbortMultipartDays:       lifecycle.NotAvailable,
	}
	if s.Status == "" {
		s.Status = "Unknown"
	}
	if r.NoncurrentVersionExpiration != nil && r.NoncurrentVersionExpiration.NoncurrentDays != nil {
		s.NoncurrentExpirationDays = fmt.Sprintf("%d", *r.NoncurrentVersionExpiration.NoncurrentDays)
	}
	if r.AbortIncompleteMultipartUpload != nil && r.AbortIncompleteMultipartUpload.DaysAfterInitiation != nil {
		s.AbortMultipartDays = fmt.Sprintf("%d", *r.AbortIncompleteMultipartUpload.DaysAfterInitiation)
	}
	return s
}

// summarizeFilter renders the rule scope: filter prefix plus tag when
// present, falling back to the legacy top-level prefix field.
func summarizeFilter(f *types.LifecycleRuleFilter, legacyPrefix *string) string {
	if f == nil {
		if legacyPrefix != nil && *legacyPrefix != "" {
			return *legacyPrefix
		}
		return "No Prefix"
	}

	prefix := "No Prefix"
	if f.Prefix != nil && *f.Prefix != "" {
		prefix = *f.Prefix
	} else if f.And != nil && f.And.Prefix != nil && *f.And.Prefix != "" {
		prefix = *f.And.Prefix
	}

	if f.Tag != nil {
		prefix += fmt.Sprintf(", Tag: %s=%s", aws.ToString(f.Tag.Key), aws.ToString(f.Tag.Value))
	}
	return prefix
}

func summarizeTransitions(transitions []types.Transition) string {
	if len(transitions) == 0 {
		return lifecycle.NotAvailable
	}
	parts := make([]string, 0, len(transitions))
	for _, t := range transitions {
		days := lifecycle.NotAvailable
		if t.Days != nil {
			days = fmt.Sprintf("%d", *t.Days)
		}
		parts = append(parts, fmt.Sprintf("%s days to %s", days, t.StorageClass))
	}
	return strings.Join(parts, ", ")
}

func summarizeNoncurrentTransitions(transitions []types.NoncurrentVersionTransition) string {
	if len(transitions) == 0 {
		return lifecycle.NotAvailable
	}
	parts := make([]string, 0, len(transitions))
	for _, t := range transitions {
		days := lifecycle.NotAvailable
		if t.NoncurrentDays != nil {
			days = fmt.Sprintf("%d", *t.NoncurrentDays)
		}
		parts = append(parts, fmt.Sprintf("%s days to %s", days, t.StorageClass))
	}
	return strings.Join(parts, ", ")
}

func summarizeExpiration(exp *types.LifecycleExpiration) string {
	if exp == nil {
		return lifecycle.NotAvailable
	}
	if exp.Days != nil {
		return fmt.Sprintf("%d", *exp.Days)
	}
	if exp.Date != nil {
		return exp.Date.Format("2006-01-02")
	}
	if exp.ExpiredObjectDeleteMarker != nil && *exp.ExpiredObjectDeleteMarker {
		return "ExpiredObjectDeleteMarker"
	}
	return lifecycle.NotAvailable
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
