package core

import (
	"context"
	"errors"
	"time"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/internal/llm"
	"github.com/repolens/repolens/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing different inference modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, store contract.RunStore) error

// ExecuteInfer runs the full spec inference and prints the result.
// It serves as the main entry point for the 'infer' mode.
func ExecuteInfer(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	refiner := BuildRefiner(cfg)

	runID := beginRun(cfg, store, start)

	spec, refined, err := InferSpec(ctx, client, refiner, cfg.RepoPath, cfg.MaxCommits)
	if err != nil {
		return err
	}

	if runID > 0 {
		if err := store.RecordWorkflowMetrics(runID, spec.Metadata.Repository, &spec.Workflow); err != nil {
			contract.LogWarn("Failed to record workflow metrics", err)
		}
		if err := store.EndRun(runID, time.Now(), refined); err != nil {
			contract.LogWarn("Failed to finish run record", err)
		}
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteSpec(spec, cfg, duration, refined)
}

// ExecuteHistory runs the git history inference only and prints the result.
// It serves as the main entry point for the 'history' mode.
func ExecuteHistory(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	refiner := BuildRefiner(cfg)

	runID := beginRun(cfg, store, start)

	metrics, refined := AnalyzeHistory(ctx, client, refiner, cfg.RepoPath, cfg.MaxCommits)

	if runID > 0 {
		if err := store.RecordWorkflowMetrics(runID, cfg.RepoPath, metrics); err != nil {
			contract.LogWarn("Failed to record workflow metrics", err)
		}
		if err := store.EndRun(runID, time.Now(), refined); err != nil {
			contract.LogWarn("Failed to finish run record", err)
		}
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteHistory(metrics, cfg, duration, refined)
}

// BuildRefiner constructs a convention refiner from the config, or nil when
// refinement is disabled or no API key is available. Returning nil keeps the
// engine on its rule-based findings.
func BuildRefiner(cfg *contract.Config) contract.ConventionRefiner {
	if !cfg.Refine {
		return nil
	}
	refiner, err := llm.NewRefiner(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMAPIKey)
	if err != nil {
		if !errors.Is(err, llm.ErrNoAPIKey) {
			contract.LogWarn("Failed to build convention refiner", err)
		}
		return nil
	}
	return refiner
}

// beginRun records the start of a run. Tracking failures are warnings, never
// fatal: a runID of 0 means this run is not tracked.
func beginRun(cfg *contract.Config, store contract.RunStore, start time.Time) int64 {
	if store == nil {
		return 0
	}
	configParams := map[string]any{
		"repo_path":   cfg.RepoPath,
		"max_commits": cfg.MaxCommits,
		"output":      string(cfg.Output),
		"refine":      cfg.Refine,
		"llm_model":   cfg.LLMModel,
	}
	runID, err := store.BeginRun(start, configParams)
	if err != nil {
		contract.LogWarn("Failed to record run start", err)
		return 0
	}
	return runID
}
