package lifecycle

import (
	"encoding/json"
	"strings"
)

// The placeholder used wherever a rule attribute is absent.
const NotAvailable = "N/A"

// Configuration is a bucket's lifecycle configuration as owned by the remote
// provider. Raw carries the provider-schema rules array byte-for-byte as the
// provider returned it; Rules is the flattened view used for reporting. A nil
// *Configuration means the bucket has no lifecycle configuration, which is a
// normal state, not an error.
type Configuration struct {
	Raw   json.RawMessage
	Rules []RuleSummary
}

// Empty reports whether the configuration is absent or carries no rules.
func (c *Configuration) Empty() bool {
	return c == nil || len(c.Rules) == 0
}

// RuleSummary is one lifecycle rule flattened into report columns. All values
// are pre-rendered strings with NotAvailable placeholders, matching the
// report file layout.
type RuleSummary struct {
	ID                       string
	Status                   string
	Prefix                   string
	Transitions              string
	ExpirationDays           string
	NoncurrentTransitions    string
	NoncurrentExpirationDays string
	AbortMultipartDays       string
}

// Compact renders the rule as a single human-readable cell for the one-row-
// per-bucket report.
func (r RuleSummary) Compact() string {
	var sb strings.Builder
	sb.WriteString(r.ID)
	sb.WriteString(" [")
	sb.WriteString(r.Status)
	sb.WriteString("]")
	if r.Prefix != NotAvailable && r.Prefix != "" {
		sb.WriteString(" prefix=")
		sb.WriteString(r.Prefix)
	}
	if r.Transitions != NotAvailable && r.Transitions != "" {
		sb.WriteString(" transitions=")
		sb.WriteString(r.Transitions)
	}
	if r.ExpirationDays != NotAvailable && r.ExpirationDays != "" {
		sb.WriteString(" expire=")
		sb.WriteString(r.ExpirationDays)
		sb.WriteString("d")
	}
	return sb.String()
}

// BucketPolicy pairs a bucket name with its lifecycle configuration, nil when
// the bucket has none. This is the report and backup-export input type.
type BucketPolicy struct {
	Bucket string
	Config *Configuration
}

// HasPolicy reports whether the bucket carried a lifecycle configuration.
func (p BucketPolicy) HasPolicy() bool {
	return !p.Config.Empty()
}

// Summarize flattens all rules of a policy into one report cell.
func (p BucketPolicy) Summarize() string {
	if !p.HasPolicy() {
		return NotAvailable
	}
	parts := make([]string, 0, len(p.Config.Rules))
	for _, r := range p.Config.Rules {
		parts = append(parts, r.Compact())
	}
	return strings.Join(parts, "; ")
}
