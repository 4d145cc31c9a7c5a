package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/repolens/repolens/schema"
)

// baseBranchNames are long-lived branches that carry no type prefix.
var baseBranchNames = map[string]struct{}{
	"main":       {},
	"master":     {},
	"develop":    {},
	"dev":        {},
	"trunk":      {},
	"production": {},
	"prod":       {},
	"staging":    {},
	"stage":      {},
}

// branchTypeCatalogue is the ordered prefix list for branch-type detection.
// Evaluated top-down per branch; the first match wins.
var branchTypeCatalogue = []string{
	"feature", "feat",
	"fix", "bugfix", "bug",
	"hotfix",
	"release",
	"chore",
	"docs",
	"refactor",
	"test",
	"perf",
	"style",
}

// namingPrefixOrder lists prefixes for the naming-pattern matcher, most
// specific first so "feature" is seen before "feat".
var namingPrefixOrder = []string{
	"feature", "bugfix", "hotfix", "release", "refactor",
	"feat", "fix", "bug", "chore", "docs", "test", "perf", "style",
}

// stripRemotePrefix recovers a branch's logical name by removing leading
// origin path segments from 'git branch -a' style output.
func stripRemotePrefix(branch string) string {
	branch = strings.TrimPrefix(branch, "remotes/origin/")
	return strings.TrimPrefix(branch, "origin/")
}

// detectBranchStrategy classifies the branching model from branch names.
func detectBranchStrategy(branches []string) *schema.BranchStrategy {
	hasMain := false
	hasDevelop := false
	hasRelease := false
	hasFeature := false
	hasHotfix := false

	for _, b := range branches {
		lower := strings.ToLower(b)
		switch lower {
		case "main", "master":
			hasMain = true
		case "develop", "dev":
			hasDevelop = true
		}
		if strings.Contains(lower, "release") {
			hasRelease = true
		}
		if strings.Contains(lower, "feat") {
			hasFeature = true
		}
		if strings.Contains(lower, "hotfix") {
			hasHotfix = true
		}
	}

	switch {
	case hasDevelop && (hasFeature || hasRelease || hasHotfix):
		return schema.Ptr(schema.GitFlow)
	case hasMain && hasDevelop:
		return schema.Ptr(schema.GitHubFlowWithDevelop)
	case hasMain && (hasFeature || hasHotfix):
		return schema.Ptr(schema.FeatureBranch)
	case hasMain:
		return schema.Ptr(schema.TrunkBased)
	default:
		return nil
	}
}

// nonBaseBranches returns logical names of branches that are neither base
// branches nor HEAD pointers.
func nonBaseBranches(branches []string) []string {
	var result []string
	for _, b := range branches {
		if strings.HasPrefix(b, "HEAD") || strings.TrimSpace(b) == "" {
			continue
		}
		name := stripRemotePrefix(b)
		if _, ok := baseBranchNames[strings.ToLower(name)]; ok {
			continue
		}
		result = append(result, name)
	}
	return result
}

// detectBranchTypes enumerates the distinct branch type prefixes in use,
// sorted alphabetically. Presence only, not ranked.
func detectBranchTypes(branches []string) []string {
	featureBranches := nonBaseBranches(branches)
	if len(featureBranches) == 0 {
		return []string{}
	}

	found := make(map[string]struct{})
	for _, name := range featureBranches {
		lower := strings.ToLower(name)
		for _, prefix := range branchTypeCatalogue {
			if strings.HasPrefix(lower, prefix+"-") || strings.HasPrefix(lower, prefix+"/") {
				found[prefix] = struct{}{}
				break
			}
		}
	}

	// hotfix and bugfix also count as bare leading tokens
	for _, name := range featureBranches {
		lower := strings.ToLower(name)
		for _, token := range []string{"hotfix", "bugfix"} {
			if strings.HasPrefix(lower, token) {
				found[token] = struct{}{}
			}
		}
	}

	types := make([]string, 0, len(found))
	for t := range found {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// detectBranchNamingPattern infers the naming template(s) in use, such as
// "feature/{name}, fix/{name}". The threshold is deliberately low so a single
// branch registers.
func detectBranchNamingPattern(branches []string) *string {
	featureBranches := nonBaseBranches(branches)
	if len(featureBranches) == 0 {
		return nil
	}

	total := len(featureBranches)
	threshold := max(1, total/10)

	patterns := make(map[string]string)
	for _, prefix := range namingPrefixOrder {
		dashCount := 0
		slashCount := 0
		for _, name := range featureBranches {
			lower := strings.ToLower(name)
			if strings.HasPrefix(lower, prefix+"-") {
				dashCount++
			}
			if strings.HasPrefix(lower, prefix+"/") {
				slashCount++
			}
		}

		var sep string
		switch {
		case slashCount >= threshold:
			sep = "/"
		case dashCount >= threshold:
			sep = "-"
		default:
			continue
		}

		// "feat" and "feature" are the same semantic family: feature wins.
		switch prefix {
		case "feat":
			if _, ok := patterns["feature"]; ok {
				continue
			}
			patterns["feat"] = "feat" + sep + "{name}"
		case "feature":
			delete(patterns, "feat")
			patterns["feature"] = "feature" + sep + "{name}"
		default:
			patterns[prefix] = fmt.Sprintf("%s%s{name}", prefix, sep)
		}
	}

	if len(patterns) == 0 {
		return genericSeparatorPattern(featureBranches)
	}

	values := make([]string, 0, len(patterns))
	for _, v := range patterns {
		values = append(values, v)
	}
	sort.Strings(values)
	return schema.Ptr(strings.Join(values, ", "))
}

// genericSeparatorPattern is the fallback when no known prefix registers: it
// looks for a dominant separator style across all non-base branches.
func genericSeparatorPattern(featureBranches []string) *string {
	total := len(featureBranches)
	threshold := max(1, total*3/10)

	dashSeparated := 0
	slashSeparated := 0
	for _, name := range featureBranches {
		if strings.Contains(name, "-") && !strings.HasPrefix(name, "-") {
			dashSeparated++
		}
		if strings.Contains(name, "/") && !strings.HasPrefix(name, "/") {
			slashSeparated++
		}
	}

	switch {
	case dashSeparated >= threshold:
		return schema.Ptr("{type}-{name}")
	case slashSeparated >= threshold:
		return schema.Ptr("{type}/{name}")
	default:
		return nil
	}
}
