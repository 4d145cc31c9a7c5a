// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/repolens/repolens/internal/contract"
)

// NewMCPServer initializes and configures the RepoLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, refiner contract.ConventionRefiner) *server.MCPServer {
	s := server.NewMCPServer(
		"RepoLens Inference Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		refiner: refiner,
	}

	// --- 1. Tool: infer_repo_spec ---
	s.AddTool(mcp.NewTool("infer_repo_spec",
		mcp.WithDescription("Infer a full repository spec: languages, tooling, workflow conventions, structure, API surface and data assets."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithNumber("max_commits", mcp.Description("Maximum number of commits to sample from git history.")),
	), h.handleInferRepoSpec)

	// --- 2. Tool: get_history_metrics ---
	s.AddTool(mcp.NewTool("get_history_metrics",
		mcp.WithDescription("Infer development workflow conventions from git history: commit cadence, branch strategy, commit/branch/tag conventions and release rhythm."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("max_commits", mcp.Description("Maximum number of commits to sample from git history.")),
	), h.handleGetHistoryMetrics)

	return s
}

// StartMCPServer starts the RepoLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, refiner contract.ConventionRefiner) error {
	s := NewMCPServer(baseCfg, client, refiner)
	return server.ServeStdio(s)
}
