package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRunsExport(t *testing.T) {
	t.Run("requires output file", func(t *testing.T) {
		store := newSQLiteStore(t)
		err := ExecuteRunsExport(store, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output-file is required")
	})

	t.Run("refuses to export nothing", func(t *testing.T) {
		store := newSQLiteStore(t)
		err := ExecuteRunsExport(store, filepath.Join(t.TempDir(), "export"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no run data")
	})

	t.Run("writes both parquet files", func(t *testing.T) {
		store := newSQLiteStore(t)
		runID, err := store.BeginRun(time.Now(), map[string]any{"max_commits": 400})
		require.NoError(t, err)
		require.NoError(t, store.RecordWorkflowMetrics(runID, "/tmp/demo", sampleMetrics()))
		require.NoError(t, store.EndRun(runID, time.Now(), false))

		outputFile := filepath.Join(t.TempDir(), "export")
		require.NoError(t, ExecuteRunsExport(store, outputFile))

		assert.FileExists(t, outputFile+".runs.parquet")
		assert.FileExists(t, outputFile+".workflow_metrics.parquet")
	})
}
