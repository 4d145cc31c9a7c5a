package schema

// Ptr returns a pointer to v. Convenient for building nullable metric fields.
func Ptr[T any](v T) *T {
	return &v
}

// DerefOr returns the value behind p, or fallback when p is nil.
func DerefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// IsEmpty reports whether a metrics record carries no signal at all, which is
// what the engine returns for paths that are not git repositories.
func (m *HistoryMetrics) IsEmpty() bool {
	return m.AvgCommitsPerWeek == nil &&
		m.ActiveContributors == nil &&
		m.ReleaseSignal == nil &&
		m.BranchStrategy == nil &&
		len(m.BranchTypes) == 0 &&
		m.CommitConvention == nil &&
		m.BranchNamingPattern == nil &&
		m.TagNamingConvention == nil &&
		m.RecentTagsCount == nil
}
