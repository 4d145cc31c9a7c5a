package core

import (
	"regexp"
	"strings"

	"github.com/repolens/repolens/schema"
)

// commitFamily pairs an anchored subject pattern with its convention label.
// Families are evaluated top-down; the first to clear the majority wins.
type commitFamily struct {
	pattern *regexp.Regexp
	label   string
}

// commitFamilies holds the commit-subject conventions, in priority order.
// Conventional commits is checked before angular style and wins ties.
var commitFamilies = []commitFamily{
	{
		pattern: regexp.MustCompile(`(?i)^(feat|fix|docs|style|refactor|test|chore|perf|ci|build|revert)(\(.+\))?:`),
		label:   schema.ConventionalCommits,
	},
	{
		pattern: regexp.MustCompile(`(?i)^(feat|fix|docs|style|refactor|test|chore|perf|ci|build|revert|feat!|fix!)(\(.+\))?:`),
		label:   schema.AngularStyle,
	},
}

// tagFamily pairs an anchored tag-name pattern with its convention label.
type tagFamily struct {
	pattern *regexp.Regexp
	label   string
}

// tagFamilies holds the tag naming conventions, in priority order.
var tagFamilies = []tagFamily{
	{regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?$`), schema.SemanticVersioning},
	{regexp.MustCompile(`^\d{4}[.-]\d{1,2}([.-]\d{1,2})?$`), schema.CalendarVersioning},
	{regexp.MustCompile(`(?i)^(v|version|release|r)\d+(\.\d+)?$`), schema.SimpleVersioning},
	{regexp.MustCompile(`^\d{8}$|^\d{4}-\d{2}-\d{2}$`), schema.DateBasedTags},
}

// detectCommitConvention classifies commit subjects against the known
// convention families. A family must cover at least half of the sampled
// subjects. Windows dominated by merge commits yield no convention.
func detectCommitConvention(subjects []string) *string {
	if len(subjects) == 0 {
		return nil
	}

	threshold := float64(len(subjects)) * 0.5
	for _, family := range commitFamilies {
		count := 0
		for _, msg := range subjects {
			if family.pattern.MatchString(msg) {
				count++
			}
		}
		if float64(count) >= threshold {
			return schema.Ptr(family.label)
		}
	}

	// Merge noise at the head of the window is not a convention
	recent := subjects
	if len(recent) > 10 {
		recent = recent[:10]
	}
	for _, msg := range recent {
		if strings.HasPrefix(msg, "Merge") || strings.HasPrefix(msg, "merge") {
			return nil
		}
	}
	return nil
}

// detectTagNamingConvention classifies tag names against the known naming
// families. A family must cover at least half of all tags; families are
// near-exclusive, so the earlier-checked one wins overlaps.
func detectTagNamingConvention(tags []schema.TagRecord) *string {
	if len(tags) == 0 {
		return nil
	}

	threshold := float64(len(tags)) * 0.5
	for _, family := range tagFamilies {
		count := 0
		for _, tag := range tags {
			if family.pattern.MatchString(tag.Name) {
				count++
			}
		}
		if float64(count) >= threshold {
			return schema.Ptr(family.label)
		}
	}
	return nil
}
