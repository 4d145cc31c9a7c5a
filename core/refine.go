package core

import "github.com/repolens/repolens/schema"

// mergeFindings applies the per-field override policy: a non-nil refined field
// replaces the rule-based one; a nil field keeps the rule-based value. Pure
// function over two partially-null records, never in-place mutation.
func mergeFindings(ruleBased, refined schema.ConventionFindings) schema.ConventionFindings {
	merged := ruleBased
	if refined.CommitConvention != nil {
		merged.CommitConvention = refined.CommitConvention
	}
	if refined.BranchNamingPattern != nil {
		merged.BranchNamingPattern = refined.BranchNamingPattern
	}
	if refined.TagNamingConvention != nil {
		merged.TagNamingConvention = refined.TagNamingConvention
	}
	return merged
}
