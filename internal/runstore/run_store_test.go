package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore opens a throwaway SQLite store in a temp directory.
func newSQLiteStore(t *testing.T) contract.RunStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleMetrics() *schema.HistoryMetrics {
	return &schema.HistoryMetrics{
		AvgCommitsPerWeek:   schema.Ptr(4.2),
		ActiveContributors:  schema.Ptr(3),
		ReleaseSignal:       schema.Ptr(schema.FrequentReleases),
		BranchStrategy:      schema.Ptr(schema.GitFlow),
		BranchTypes:         []string{"feature", "hotfix"},
		CommitConvention:    schema.Ptr(schema.ConventionalCommits),
		BranchNamingPattern: schema.Ptr("feature/{name}"),
		TagNamingConvention: schema.Ptr(schema.SemanticVersioning),
		RecentTagsCount:     schema.Ptr(5),
	}
}

func TestRunStoreLifecycle(t *testing.T) {
	store := newSQLiteStore(t)

	startTime := time.Now().Add(-2 * time.Second)
	runID, err := store.BeginRun(startTime, map[string]any{"repo_path": "/tmp/demo", "max_commits": 400})
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	require.NoError(t, store.RecordWorkflowMetrics(runID, "/tmp/demo", sampleMetrics()))
	require.NoError(t, store.EndRun(runID, time.Now(), true))

	t.Run("status reflects the run", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 1, status.TotalRuns)
		assert.Equal(t, runID, status.LastRunID)
		assert.WithinDuration(t, startTime, status.LastRunTime, time.Second)
		assert.Equal(t, int64(1), status.TableSizes["repolens_runs"])
		assert.Equal(t, int64(1), status.TableSizes["repolens_workflow_metrics"])
	})

	t.Run("runs round-trip", func(t *testing.T) {
		runs, err := store.GetAllRuns()
		require.NoError(t, err)
		require.Len(t, runs, 1)

		record := runs[0]
		assert.Equal(t, runID, record.RunID)
		assert.True(t, record.Refined)
		require.NotNil(t, record.EndTime)
		require.NotNil(t, record.RunDurationMs)
		assert.GreaterOrEqual(t, *record.RunDurationMs, int64(0))
		assert.Contains(t, record.ConfigParams, `"max_commits":400`)
	})

	t.Run("workflow metrics round-trip", func(t *testing.T) {
		records, err := store.GetAllWorkflowMetrics()
		require.NoError(t, err)
		require.Len(t, records, 1)

		record := records[0]
		assert.Equal(t, runID, record.RunID)
		assert.Equal(t, "/tmp/demo", record.RepoPath)
		require.NotNil(t, record.AvgCommitsPerWeek)
		assert.InDelta(t, 4.2, *record.AvgCommitsPerWeek, 0.001)
		require.NotNil(t, record.ReleaseSignal)
		assert.Equal(t, string(schema.FrequentReleases), *record.ReleaseSignal)
		require.NotNil(t, record.BranchStrategy)
		assert.Equal(t, string(schema.GitFlow), *record.BranchStrategy)
		assert.Equal(t, "feature,hotfix", record.BranchTypes)
		require.NotNil(t, record.RecentTagsCount)
		assert.Equal(t, 5, *record.RecentTagsCount)
	})

	t.Run("null metric columns survive", func(t *testing.T) {
		secondID, err := store.BeginRun(time.Now(), nil)
		require.NoError(t, err)
		empty := &schema.HistoryMetrics{BranchTypes: []string{}}
		require.NoError(t, store.RecordWorkflowMetrics(secondID, "/tmp/empty", empty))

		records, err := store.GetAllWorkflowMetrics()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Nil(t, records[1].AvgCommitsPerWeek)
		assert.Nil(t, records[1].ReleaseSignal)
		assert.Equal(t, "", records[1].BranchTypes)
	})

	t.Run("clear empties both tables", func(t *testing.T) {
		require.NoError(t, store.Clear())
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, 0, status.TotalRuns)
		assert.Equal(t, int64(0), status.TableSizes["repolens_workflow_metrics"])
	})
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordWorkflowMetrics(runID, "/tmp/demo", sampleMetrics()))
	assert.NoError(t, store.EndRun(runID, time.Now(), false))
	assert.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, string(schema.NoneBackend), status.Backend)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)

	assert.NoError(t, store.Close())
}

func TestNewRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
