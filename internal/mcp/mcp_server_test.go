package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/repolens/repolens/internal/contract"
	mcp_internal "github.com/repolens/repolens/internal/mcp"
	"github.com/stretchr/testify/assert"
	mockpkg "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMCPServerTools(t *testing.T) {
	baseCfg := &contract.Config{
		RepoPath:   ".",
		MaxCommits: contract.DefaultMaxCommits,
	}

	ctx := context.Background()

	t.Run("tools are registered", func(t *testing.T) {
		client := &contract.MockGitClient{}
		s := mcp_internal.NewMCPServer(baseCfg, client, nil)

		require.NotNil(t, s.GetTool("infer_repo_spec"))
		require.NotNil(t, s.GetTool("get_history_metrics"))
	})

	t.Run("get_history_metrics returns JSON for a non-repository", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("CommitTimestamps", ctx, mockpkg.Anything, 50).
			Return([]int64(nil), errors.New("not a git repository"))
		s := mcp_internal.NewMCPServer(baseCfg, client, nil)

		tool := s.GetTool("get_history_metrics")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_history_metrics",
				Arguments: map[string]any{
					"repo_path":   "/tmp/not-a-repo",
					"max_commits": 50.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "Tool logic failures should surface in the result, not as raw errors")
		assert.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"average_commits_per_week": null`)
		assert.Contains(t, text, `"branch_types": []`)
		client.AssertExpectations(t)
	})

	t.Run("infer_repo_spec uses the base config repo path", func(t *testing.T) {
		repoDir := t.TempDir()
		cfg := &contract.Config{RepoPath: repoDir, MaxCommits: contract.DefaultMaxCommits}

		client := &contract.MockGitClient{}
		client.On("CommitTimestamps", ctx, mockpkg.Anything, contract.DefaultMaxCommits).
			Return([]int64(nil), errors.New("not a git repository"))
		s := mcp_internal.NewMCPServer(cfg, client, nil)

		tool := s.GetTool("infer_repo_spec")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "infer_repo_spec",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"spec_version"`)
		assert.Contains(t, text, `"confidence"`)
		// The base config repo path must not be mutated by per-request overrides
		assert.Equal(t, repoDir, cfg.RepoPath)
	})
}
