// Package parquet provides data structures and functions for exporting run
// tracking data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/repolens/repolens/schema"
)

// InferenceRun represents a single inference run with metadata.
// This struct maps to the repolens_runs database table.
type InferenceRun struct {
	// RunID is the unique identifier for this inference run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// Refined reports whether convention findings were refined by a language model
	Refined bool `parquet:"refined,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters
	ConfigParams string `parquet:"config_params,snappy"`
}

// WorkflowMetrics represents the inferred workflow metrics for a repository.
// This struct maps to the repolens_workflow_metrics database table.
type WorkflowMetrics struct {
	// RunID references the parent inference run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoPath is the absolute path of the analyzed repository
	RepoPath string `parquet:"repo_path,snappy"`

	// RecordedAt is when these metrics were recorded (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// AvgCommitsPerWeek is the commit cadence over the sampled window (nullable)
	AvgCommitsPerWeek *float64 `parquet:"avg_commits_per_week,optional,snappy"`

	// ActiveContributors is the number of distinct commit authors (nullable)
	ActiveContributors *int `parquet:"active_contributors,optional,snappy"`

	// ReleaseSignal is the inferred release rhythm (nullable)
	ReleaseSignal *string `parquet:"release_signal,optional,snappy"`

	// BranchStrategy is the inferred branching model (nullable)
	BranchStrategy *string `parquet:"branch_strategy,optional,snappy"`

	// BranchTypes is the comma-joined list of observed branch type prefixes
	BranchTypes string `parquet:"branch_types,snappy"`

	// CommitConvention is the inferred commit message convention (nullable)
	CommitConvention *string `parquet:"commit_convention,optional,snappy"`

	// BranchNamingPattern is the inferred branch naming pattern (nullable)
	BranchNamingPattern *string `parquet:"branch_naming_pattern,optional,snappy"`

	// TagNamingConvention is the inferred tag naming convention (nullable)
	TagNamingConvention *string `parquet:"tag_naming_convention,optional,snappy"`

	// RecentTagsCount is the number of tags created in the last year (nullable)
	RecentTagsCount *int `parquet:"recent_tags_count,optional,snappy"`
}

// WriteInferenceRunsParquet writes a slice of InferenceRun structs to a Parquet file.
func WriteInferenceRunsParquet(data []InferenceRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the InferenceRun struct tags
	writer := parquet.NewGenericWriter[InferenceRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteWorkflowMetricsParquet writes a slice of WorkflowMetrics structs to a Parquet file.
func WriteWorkflowMetricsParquet(data []WorkflowMetrics, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the WorkflowMetrics struct tags
	writer := parquet.NewGenericWriter[WorkflowMetrics](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to InferenceRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []InferenceRun {
	result := make([]InferenceRun, len(records))
	for i, record := range records {
		result[i] = InferenceRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Refined:       record.Refined,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertWorkflowMetricsRecords converts schema.WorkflowMetricsRecord to WorkflowMetrics for Parquet export.
func ConvertWorkflowMetricsRecords(records []schema.WorkflowMetricsRecord) []WorkflowMetrics {
	result := make([]WorkflowMetrics, len(records))
	for i, record := range records {
		result[i] = WorkflowMetrics{
			RunID:               record.RunID,
			RepoPath:            record.RepoPath,
			RecordedAt:          record.RecordedAt,
			AvgCommitsPerWeek:   record.AvgCommitsPerWeek,
			ActiveContributors:  record.ActiveContributors,
			ReleaseSignal:       record.ReleaseSignal,
			BranchStrategy:      record.BranchStrategy,
			BranchTypes:         record.BranchTypes,
			CommitConvention:    record.CommitConvention,
			BranchNamingPattern: record.BranchNamingPattern,
			TagNamingConvention: record.TagNamingConvention,
			RecentTagsCount:     record.RecentTagsCount,
		}
	}
	return result
}
