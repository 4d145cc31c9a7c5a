package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/repolens/repolens/core"
	"github.com/repolens/repolens/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	refiner contract.ConventionRefiner
}

func (h *toolHandler) handleInferRepoSpec(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if m := request.GetInt("max_commits", 0); m > 0 {
		cfg.MaxCommits = m
	}

	spec, _, err := core.InferSpec(ctx, h.client, h.refiner, cfg.RepoPath, cfg.MaxCommits)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("inference failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(spec, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHistoryMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if m := request.GetInt("max_commits", 0); m > 0 {
		cfg.MaxCommits = m
	}

	metrics, _ := core.AnalyzeHistory(ctx, h.client, h.refiner, cfg.RepoPath, cfg.MaxCommits)

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
