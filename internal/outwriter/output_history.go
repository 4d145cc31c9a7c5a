package outwriter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// PrintHistoryMetrics outputs workflow metrics, dispatching based on the output format configured.
func PrintHistoryMetrics(metrics *schema.HistoryMetrics, cfg *contract.Config, duration time.Duration, refined bool) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, metrics)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, metrics)
		}, "Wrote YAML")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(metrics, cfg, duration, refined, w)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable metrics table.
func writeHistoryTable(metrics *schema.HistoryMetrics, cfg *contract.Config, duration time.Duration, refined bool, writer io.Writer) error {
	title := fmt.Sprintf("Workflow metrics for %s", contract.TruncatePath(cfg.RepoPath, GetMaxTablePathWidth(cfg)))
	if cfg.UseEmojis {
		title = "🧭 " + title
	}
	if _, err := fmt.Fprintln(writer, title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignLeft
	})

	branchTypes := "(none)"
	if len(metrics.BranchTypes) > 0 {
		branchTypes = strings.Join(metrics.BranchTypes, ", ")
	}

	data := [][]string{
		{"Commit cadence (per week)", displayValue(metrics.AvgCommitsPerWeek)},
		{"Active contributors", displayValue(metrics.ActiveContributors)},
		{"Release signal", displayValue(metrics.ReleaseSignal)},
		{"Branch strategy", displayValue(metrics.BranchStrategy)},
		{"Branch types", branchTypes},
		{"Commit convention", displayValue(metrics.CommitConvention)},
		{"Branch naming pattern", displayValue(metrics.BranchNamingPattern)},
		{"Tag naming convention", displayValue(metrics.TagNamingConvention)},
		{"Recent tags (last year)", displayValue(metrics.RecentTagsCount)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	source := "rule-based"
	if refined {
		source = "rule-based + LLM refinement"
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Convention source: %s\n", duration, source); err != nil {
		return err
	}
	return nil
}
