package cmd

import (
	"github.com/repolens/repolens/core"
	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the RepoLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to infer repository specs and workflow conventions via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP mode uses stdio for the protocol, so setup must not pollute
		// stdout with headers.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		client := contract.NewLocalGitClient()
		refiner := core.BuildRefiner(cfg)
		return mcp.StartMCPServer(rootCtx, cfg, client, refiner)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
