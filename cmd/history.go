package cmd

import (
	"github.com/repolens/repolens/core"
	"github.com/repolens/repolens/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd performs git history inference only.
var historyCmd = &cobra.Command{
	Use:   "history [repo-path]",
	Short: "Infer development workflow conventions from git history.",
	Long: `Analyze git history to infer development workflow conventions.

Derives:
- Commit cadence (average commits per week) and active contributor count
- Release rhythm from tag timestamps, with a commit activity fallback
- Branching strategy (git-flow, github-flow, feature-branch, trunk-based)
- Branch type prefixes and branch naming patterns
- Commit message convention (conventional commits, angular style)
- Tag naming convention (semantic, calendar, simple, date-based)

A repository without usable git history reports every metric as absent
instead of failing.

Examples:
  # Analyze the current directory
  repolens history

  # Sample more commits and print a table
  repolens history /path/to/repo --max-commits 2000 --output text

  # Refine convention findings with an LLM
  OPENAI_API_KEY=sk-... repolens history --refine yes`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistory(rootCtx, cfg, runStore); err != nil {
			contract.LogFatal("Cannot run history analysis", err)
		}
	},
}
