package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// PrintRunStatus outputs run store status, dispatching based on the output format configured.
func PrintRunStatus(status schema.RunStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, status)
		}, "Wrote YAML")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunStatusText(status, cfg, w)
		}, "Wrote status")
	}
}

// writeRunStatusText writes the human-readable status summary.
func writeRunStatusText(status schema.RunStatus, cfg *contract.Config, writer io.Writer) error {
	title := "Run store status"
	if cfg.UseEmojis {
		title = "📊 " + title
	}
	if _, err := fmt.Fprintln(writer, title); err != nil {
		return err
	}

	connected := "no"
	if status.Connected {
		connected = "yes"
	}
	if _, err := fmt.Fprintf(writer, "Backend: %s (connected: %s)\n", status.Backend, connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Total runs: %d\n", status.TotalRuns); err != nil {
		return err
	}
	if status.TotalRuns > 0 {
		if _, err := fmt.Fprintf(writer, "Last run: #%d at %s\n", status.LastRunID, status.LastRunTime.Format(contract.DateTimeFormat)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "Oldest run: %s\n", status.OldestRunTime.Format(contract.DateTimeFormat)); err != nil {
			return err
		}
	}
	for table, size := range status.TableSizes {
		if _, err := fmt.Fprintf(writer, "Table %s: %d rows\n", table, size); err != nil {
			return err
		}
	}
	return nil
}

// PrintRuns outputs recorded runs, dispatching based on the output format configured.
func PrintRuns(runs []schema.RunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, runs)
		}, "Wrote YAML")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(runs, cfg, w)
		}, "Wrote table")
	}
}

// writeRunsTable writes the human-readable run list.
func writeRunsTable(runs []schema.RunRecord, cfg *contract.Config, writer io.Writer) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(writer, "No recorded runs")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "Start", "Duration (ms)", "Refined"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		duration := "n/a"
		if run.RunDurationMs != nil {
			duration = strconv.FormatInt(*run.RunDurationMs, 10)
		}
		refined := "no"
		if run.Refined {
			refined = "yes"
		}
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			run.StartTime.Format(contract.DateTimeFormat),
			duration,
			refined,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d runs\n", len(runs)); err != nil {
		return err
	}
	return nil
}
