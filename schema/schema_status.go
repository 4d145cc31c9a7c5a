package schema

import "time"

// RunStatus represents the status of the run store.
type RunStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the repolens_runs table.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int64
	Refined       bool
	ConfigParams  string
}

// WorkflowMetricsRecord represents a row from the repolens_workflow_metrics table.
type WorkflowMetricsRecord struct {
	RunID               int64
	RepoPath            string
	RecordedAt          time.Time
	AvgCommitsPerWeek   *float64
	ActiveContributors  *int
	ReleaseSignal       *string
	BranchStrategy      *string
	BranchTypes         string // comma-joined
	CommitConvention    *string
	BranchNamingPattern *string
	TagNamingConvention *string
	RecentTagsCount     *int
}
