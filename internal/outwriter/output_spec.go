package outwriter

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// PrintSpecDocument outputs a full spec document, dispatching based on the output format configured.
func PrintSpecDocument(spec *schema.SpecDocument, cfg *contract.Config, duration time.Duration, refined bool) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, spec)
		}, "Wrote JSON")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSpecSummaryTable(spec, cfg, duration, refined, w)
		}, "Wrote table")
	default:
		// YAML is the natural format for a generated spec document
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, spec)
		}, "Wrote YAML")
	}
}

// writeSpecSummaryTable writes the human-readable per-section summary with
// confidence labels.
func writeSpecSummaryTable(spec *schema.SpecDocument, cfg *contract.Config, duration time.Duration, refined bool, writer io.Writer) error {
	title := fmt.Sprintf("Inferred spec for %s", contract.TruncatePath(spec.Metadata.Repository, GetMaxTablePathWidth(cfg)))
	if cfg.UseEmojis {
		title = "🔍 " + title
	}
	if _, err := fmt.Fprintln(writer, title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Section", "Confidence", "Label", "Summary"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignLeft
	})

	keys := make([]string, 0, len(spec.Confidence))
	for key := range spec.Confidence {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var data [][]string
	for _, key := range keys {
		score := spec.Confidence[key]
		label := contract.GetPlainLabel(score)
		if cfg.UseColors {
			label = contract.GetColorLabel(score)
		}
		data = append(data, []string{
			key,
			fmt.Sprintf("%.2f", score),
			label,
			summarizeSection(spec, key),
		})
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
	if _, err := fmt.Fprintf(writer, "Inference completed in %v. Convention source: %s\n", duration, source); err != nil {
		return err
	}
	return nil
}

// summarizeSection renders the most salient finding of a spec section as a
// short string for the summary table.
func summarizeSection(spec *schema.SpecDocument, key string) string {
	switch key {
	case "language_stack":
		if len(spec.LanguageStack) == 0 {
			return "no languages detected"
		}
		top := spec.LanguageStack[0]
		return fmt.Sprintf("%d languages, top: %s (%.1f%%)", len(spec.LanguageStack), top.Language, top.Ratio*100)
	case "tooling.package_managers":
		return joinOrNone(spec.Tooling.PackageManagers)
	case "tooling.linters":
		return joinOrNone(spec.Tooling.Linters)
	case "tooling.formatters":
		return joinOrNone(spec.Tooling.Formatters)
	case "tooling.test_frameworks":
		return joinOrNone(spec.Tooling.TestFrameworks)
	case "tooling.ci_systems":
		return joinOrNone(spec.Tooling.CISystems)
	case "workflow.history":
		if spec.Workflow.BranchStrategy != nil {
			return fmt.Sprintf("branch strategy: %s", *spec.Workflow.BranchStrategy)
		}
		if spec.Workflow.AvgCommitsPerWeek != nil {
			return fmt.Sprintf("%.2f commits/week", *spec.Workflow.AvgCommitsPerWeek)
		}
		return "no git history signal"
	case "structure":
		return joinOrNone(spec.Structure.TopLevelPatterns)
	case "api_surface":
		total := len(spec.APISurface.OpenAPIFiles) + len(spec.APISurface.GraphQLFiles) + len(spec.APISurface.RouteFiles)
		return fmt.Sprintf("%d API artifacts", total)
	case "data_assets":
		return fmt.Sprintf("%d DDL files, %d migration dirs", len(spec.DataAssets.DDLFiles), len(spec.DataAssets.MigrationDirs))
	default:
		return ""
	}
}

// joinOrNone joins values with commas, or reports absence.
func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}
