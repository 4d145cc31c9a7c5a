package core

import (
	"context"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// Sampling limits for the convention refiner.
const (
	refineMaxSubjects = 100
	refineMaxBranches = 50
	refineMaxTags     = 50
)

// AnalyzeHistory is the inference orchestrator. It collects raw git data,
// computes every workflow metric rule-based, and optionally lets the refiner
// override the three convention fields. A git access failure yields an
// all-null record: partial data is treated as untrustworthy for all fields.
// The second return value reports whether refinement was applied.
func AnalyzeHistory(ctx context.Context, client contract.GitClient, refiner contract.ConventionRefiner, repoPath string, maxCommits int) (*schema.HistoryMetrics, bool) {
	timestamps, err := client.CommitTimestamps(ctx, repoPath, maxCommits)
	if err != nil {
		return emptyMetrics(), false
	}
	authors, err := client.CommitAuthors(ctx, repoPath, maxCommits)
	if err != nil {
		return emptyMetrics(), false
	}
	subjects, err := client.CommitSubjects(ctx, repoPath, maxCommits)
	if err != nil {
		return emptyMetrics(), false
	}
	branches, err := client.Branches(ctx, repoPath)
	if err != nil {
		return emptyMetrics(), false
	}
	tags, err := client.Tags(ctx, repoPath)
	if err != nil {
		return emptyMetrics(), false
	}

	metrics := &schema.HistoryMetrics{BranchTypes: detectBranchTypes(branches)}

	if len(timestamps) > 0 {
		metrics.AvgCommitsPerWeek = schema.Ptr(commitsPerWeek(timestamps))
	}
	if len(authors) > 0 {
		metrics.ActiveContributors = schema.Ptr(len(authors))
	}

	signal := releaseSignalFromTags(tags, timestamps)
	if signal == nil {
		signal = releaseSignalFromCommits(timestamps)
	}
	metrics.ReleaseSignal = signal

	// Branch strategy is always rule-based, never refiner-influenced
	metrics.BranchStrategy = detectBranchStrategy(branches)

	if len(tags) > 0 && len(timestamps) > 0 {
		metrics.RecentTagsCount = schema.Ptr(countRecentTags(tags, timestamps))
	}

	findings := schema.ConventionFindings{
		CommitConvention:    detectCommitConvention(subjects),
		BranchNamingPattern: detectBranchNamingPattern(branches),
		TagNamingConvention: detectTagNamingConvention(tags),
	}

	refined := false
	if refiner != nil {
		result, err := refiner.Refine(ctx, buildRefineSample(subjects, branches, tags))
		if err == nil {
			findings = mergeFindings(findings, result)
			refined = true
		}
		// A failed refinement is "feature unavailable this run"; the
		// rule-based findings stand.
	}

	metrics.CommitConvention = findings.CommitConvention
	metrics.BranchNamingPattern = findings.BranchNamingPattern
	metrics.TagNamingConvention = findings.TagNamingConvention
	return metrics, refined
}

// buildRefineSample assembles the capped evidence window for the refiner.
func buildRefineSample(subjects []string, branches []string, tags []schema.TagRecord) contract.RefineSample {
	sample := contract.RefineSample{
		CommitSubjects: capStrings(subjects, refineMaxSubjects),
		BranchNames:    capStrings(nonBaseBranches(branches), refineMaxBranches),
	}
	for _, tag := range tags {
		if len(sample.TagNames) >= refineMaxTags {
			break
		}
		sample.TagNames = append(sample.TagNames, tag.Name)
	}
	return sample
}

// emptyMetrics is the all-null record returned for non-repositories.
func emptyMetrics() *schema.HistoryMetrics {
	return &schema.HistoryMetrics{BranchTypes: []string{}}
}

func capStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
