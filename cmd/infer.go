package cmd

import (
	"github.com/repolens/repolens/core"
	"github.com/repolens/repolens/internal/contract"
	"github.com/spf13/cobra"
)

// inferCmd performs full repository spec inference.
var inferCmd = &cobra.Command{
	Use:   "infer [repo-path]",
	Short: "Infer a full repository spec from files and git history.",
	Long: `Inspect a repository and infer its specification.

The inferred spec covers:
- Language stack with per-language file counts and ratios
- Package managers, linters, formatters, test frameworks and CI systems
- Workflow conventions from git history (branch strategy, commit and tag conventions)
- Directory structure patterns and service markers
- API surface artifacts (OpenAPI, GraphQL, route files) and data assets

Each section carries a confidence score reflecting the evidence found.

Examples:
  # Infer a spec for the current directory
  repolens infer

  # Infer a spec as JSON written to a file
  repolens infer /path/to/repo --output json --output-file spec.json

  # Refine convention findings with an LLM
  OPENAI_API_KEY=sk-... repolens infer --refine yes`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInfer(rootCtx, cfg, runStore); err != nil {
			contract.LogFatal("Cannot run spec inference", err)
		}
	},
}
