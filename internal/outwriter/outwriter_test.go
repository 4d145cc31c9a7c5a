package outwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileConfig returns a config that writes the given format into a temp file.
func fileConfig(t *testing.T, output schema.OutputMode) (*contract.Config, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	return &contract.Config{
		RepoPath:   "/tmp/demo",
		Output:     output,
		OutputFile: path,
		Width:      80,
	}, path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func sampleHistoryMetrics() *schema.HistoryMetrics {
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

func TestPrintHistoryMetrics(t *testing.T) {
	t.Run("yaml output uses yaml field names", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.YAMLOut)
		require.NoError(t, PrintHistoryMetrics(sampleHistoryMetrics(), cfg, time.Second, false))

		out := readOutput(t, path)
		assert.Contains(t, out, "commit_cadence_per_week: 4.2")
		assert.Contains(t, out, "branch_strategy: git-flow")
	})

	t.Run("json output uses json field names", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.JSONOut)
		require.NoError(t, PrintHistoryMetrics(sampleHistoryMetrics(), cfg, time.Second, false))

		out := readOutput(t, path)
		assert.Contains(t, out, `"average_commits_per_week": 4.2`)
		assert.Contains(t, out, `"branch_types"`)
	})

	t.Run("text output renders the table and footer", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.TextOut)
		require.NoError(t, PrintHistoryMetrics(sampleHistoryMetrics(), cfg, time.Second, false))

		out := readOutput(t, path)
		assert.Contains(t, out, "Workflow metrics for /tmp/demo")
		assert.Contains(t, out, "Commit cadence (per week)")
		assert.Contains(t, out, "feature, hotfix")
		assert.Contains(t, out, "Convention source: rule-based")
		assert.NotContains(t, out, "🧭")
	})

	t.Run("emoji title and refinement footer", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.TextOut)
		cfg.UseEmojis = true
		require.NoError(t, PrintHistoryMetrics(sampleHistoryMetrics(), cfg, time.Second, true))

		out := readOutput(t, path)
		assert.Contains(t, out, "🧭 Workflow metrics")
		assert.Contains(t, out, "rule-based + LLM refinement")
	})

	t.Run("null metrics display n/a", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.TextOut)
		empty := &schema.HistoryMetrics{BranchTypes: []string{}}
		require.NoError(t, PrintHistoryMetrics(empty, cfg, time.Second, false))

		out := readOutput(t, path)
		assert.Contains(t, out, "n/a")
		assert.Contains(t, out, "(none)")
	})
}

func TestPrintSpecDocument(t *testing.T) {
	buildSpec := func() *schema.SpecDocument {
		spec := schema.NewSpecDocument("/tmp/demo")
		spec.LanguageStack = []schema.LanguageUsage{{Language: "go", Ratio: 1.0, Files: 12}}
		spec.Tooling.PackageManagers = []string{"go-mod"}
		spec.Workflow = *sampleHistoryMetrics()
		spec.RegisterConfidence("language_stack", 0.8)
		spec.RegisterConfidence("tooling.package_managers", 0.8)
		spec.RegisterConfidence("workflow.history", 0.8)
		return spec
	}

	t.Run("default output is yaml", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.YAMLOut)
		require.NoError(t, PrintSpecDocument(buildSpec(), cfg, time.Second, false))

		out := readOutput(t, path)
		assert.Contains(t, out, "metadata:")
		assert.Contains(t, out, "repository: /tmp/demo")
		assert.Contains(t, out, "language_stack:")
		assert.Contains(t, out, "confidence:")
	})

	t.Run("json output", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.JSONOut)
		require.NoError(t, PrintSpecDocument(buildSpec(), cfg, time.Second, false))

		out := readOutput(t, path)
		assert.Contains(t, out, `"spec_version"`)
		assert.Contains(t, out, `"language_stack"`)
	})

	t.Run("text summary table", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.TextOut)
		require.NoError(t, PrintSpecDocument(buildSpec(), cfg, time.Second, true))

		out := readOutput(t, path)
		assert.Contains(t, out, "Inferred spec for /tmp/demo")
		assert.Contains(t, out, "language_stack")
		assert.Contains(t, out, "1 languages, top: go (100.0%)")
		assert.Contains(t, out, "go-mod")
		assert.Contains(t, out, "branch strategy: git-flow")
		assert.Contains(t, out, contract.StrongValue)
		assert.Contains(t, out, "rule-based + LLM refinement")
	})
}

func TestPrintRunStatus(t *testing.T) {
	status := schema.RunStatus{
		Backend:       "sqlite",
		Connected:     true,
		TotalRuns:     2,
		LastRunID:     2,
		LastRunTime:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		OldestRunTime: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
		TableSizes:    map[string]int64{"repolens_runs": 2, "repolens_workflow_metrics": 2},
	}

	t.Run("text output", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.TextOut)
		require.NoError(t, PrintRunStatus(status, cfg))

		out := readOutput(t, path)
		assert.Contains(t, out, "Backend: sqlite (connected: yes)")
		assert.Contains(t, out, "Total runs: 2")
		assert.Contains(t, out, "Last run: #2 at 2026-08-01T12:00:00Z")
		assert.Contains(t, out, "Table repolens_runs: 2 rows")
	})

	t.Run("json output", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.JSONOut)
		require.NoError(t, PrintRunStatus(status, cfg))
		assert.Contains(t, readOutput(t, path), `"total_runs": 2`)
	})
}

func TestPrintRuns(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		cfg, path := fileConfig(t, schema.TextOut)
		require.NoError(t, PrintRuns(nil, cfg))
		assert.Contains(t, readOutput(t, path), "No recorded runs")
	})

	t.Run("table with rows", func(t *testing.T) {
		durationMs := int64(1234)
		runs := []schema.RunRecord{
			{RunID: 1, StartTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), RunDurationMs: &durationMs, Refined: true},
			{RunID: 2, StartTime: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)},
		}

		cfg, path := fileConfig(t, schema.TextOut)
		require.NoError(t, PrintRuns(runs, cfg))

		out := readOutput(t, path)
		assert.Contains(t, out, "1234")
		assert.Contains(t, out, "n/a")
		assert.Contains(t, out, "Showing 2 runs")
	})
}

func TestGetMaxTablePathWidth(t *testing.T) {
	t.Run("explicit width override", func(t *testing.T) {
		cfg := &contract.Config{Width: 120}
		assert.Equal(t, 70, GetMaxTablePathWidth(cfg))
	})

	t.Run("narrow width clamps to minimum", func(t *testing.T) {
		cfg := &contract.Config{Width: 20}
		assert.Equal(t, 15, GetMaxTablePathWidth(cfg))
	})
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "n/a", displayValue[int](nil))
	assert.Equal(t, "42", displayValue(schema.Ptr(42)))
	assert.Equal(t, "4.2", displayValue(schema.Ptr(4.2)))
}
