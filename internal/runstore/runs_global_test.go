package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/repolens/repolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearRuns(t *testing.T) {
	t.Run("sqlite removes the database file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "runs.db")
		store, err := NewRunStore(schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		_, err = store.BeginRun(time.Now(), nil)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
		assert.NoFileExists(t, dbPath)
	})

	t.Run("sqlite tolerates a missing file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "absent.db")
		assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	})

	t.Run("sqlite requires a file path", func(t *testing.T) {
		assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
	})

	t.Run("none backend is a no-op", func(t *testing.T) {
		assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
	})
}
