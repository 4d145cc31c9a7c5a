// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/repolens/repolens/schema"
)

// GitClient defines the read-only Git queries the inference engine needs.
// This allows the core inference logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Reference Resolution ---

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// --- History Samples ---

	// CommitTimestamps returns unix commit times for up to maxCommits commits,
	// newest first.
	CommitTimestamps(ctx context.Context, repoPath string, maxCommits int) ([]int64, error)

	// CommitAuthors returns the distinct "Name <email>" identities seen in up to
	// maxCommits commits.
	CommitAuthors(ctx context.Context, repoPath string, maxCommits int) ([]string, error)

	// CommitSubjects returns commit subject lines for up to maxCommits commits,
	// newest first.
	CommitSubjects(ctx context.Context, repoPath string, maxCommits int) ([]string, error)

	// Branches returns local and origin branch names, with remote prefixes
	// stripped and duplicates removed.
	Branches(ctx context.Context, repoPath string) ([]string, error)

	// Tags returns all tags with their creation timestamps.
	Tags(ctx context.Context, repoPath string) ([]schema.TagRecord, error)
}

// ConventionRefiner upgrades rule-based convention findings using an external
// model. Implementations must degrade gracefully: any failure is reported as an
// error and the caller keeps its rule-based result.
type ConventionRefiner interface {
	Refine(ctx context.Context, sample RefineSample) (schema.ConventionFindings, error)
}

// RefineSample is the git history evidence handed to a ConventionRefiner.
type RefineSample struct {
	CommitSubjects []string
	BranchNames    []string
	TagNames       []string
}

// RunStore defines the interface for tracking inference runs and storing workflow metrics.
type RunStore interface {
	// BeginRun creates a new inference run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the inference run with completion data
	EndRun(runID int64, endTime time.Time, refined bool) error

	// RecordWorkflowMetrics stores the inferred workflow metrics for a run
	RecordWorkflowMetrics(runID int64, repoPath string, metrics *schema.HistoryMetrics) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves all recorded runs
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllWorkflowMetrics retrieves all recorded workflow metrics
	GetAllWorkflowMetrics() ([]schema.WorkflowMetricsRecord, error)

	// Clear removes all recorded runs and metrics
	Clear() error

	// Close closes the underlying connection
	Close() error
}
