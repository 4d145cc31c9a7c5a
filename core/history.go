// Package core has core logic for convention inference from git history.
package core

import (
	"math"
	"slices"

	"github.com/repolens/repolens/schema"
)

const (
	secondsPerDay  = 24 * 3600
	secondsPerWeek = 7 * secondsPerDay
)

// commitsPerWeek computes the average commit cadence over the sampled window.
// A single timestamp yields a rate of 1.0: the rate is undefined with one
// sample, so the count itself is reported.
func commitsPerWeek(timestamps []int64) float64 {
	if len(timestamps) < 2 {
		return float64(len(timestamps))
	}
	sorted := slices.Clone(timestamps)
	slices.Sort(sorted)
	spanSeconds := float64(sorted[len(sorted)-1] - sorted[0])
	// Floor the divisor to one day-equivalent so same-day samples don't blow up
	weeks := math.Max(spanSeconds/secondsPerWeek, 1.0/7.0)
	return round2(float64(len(timestamps)) / weeks)
}

// releaseSignalFromTags classifies the release rhythm from tag timestamps.
// Tags alone are not trusted without commit activity to anchor them.
func releaseSignalFromTags(tags []schema.TagRecord, timestamps []int64) *schema.ReleaseSignal {
	if len(tags) == 0 || len(timestamps) == 0 {
		return nil
	}
	if len(tags) < 2 {
		return schema.Ptr(schema.TaggedRelease)
	}

	sorted := slices.Clone(tags)
	slices.SortFunc(sorted, func(a, b schema.TagRecord) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		default:
			return 0
		}
	})

	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += float64(sorted[i].Timestamp-sorted[i-1].Timestamp) / secondsPerDay
	}
	avgDelta := totalDays / float64(len(sorted)-1)

	switch {
	case avgDelta < 7:
		return schema.Ptr(schema.FrequentReleases)
	case avgDelta < 30:
		return schema.Ptr(schema.MonthlyReleases)
	case avgDelta < 90:
		return schema.Ptr(schema.QuarterlyReleases)
	default:
		return schema.Ptr(schema.InfrequentRelease)
	}
}

// releaseSignalFromCommits is the fallback when no tags exist. It needs at
// least 5 timestamps to say anything about the commit rhythm.
func releaseSignalFromCommits(timestamps []int64) *schema.ReleaseSignal {
	if len(timestamps) < 5 {
		return nil
	}
	sorted := slices.Clone(timestamps)
	slices.Sort(sorted)

	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += float64(sorted[i]-sorted[i-1]) / secondsPerDay
	}
	avgDelta := totalDays / float64(len(sorted)-1)

	switch {
	case avgDelta < 3:
		return schema.Ptr(schema.FastIteration)
	case avgDelta < 14:
		return schema.Ptr(schema.WeeklyActivity)
	case avgDelta < 45:
		return schema.Ptr(schema.MonthlyActivity)
	default:
		return schema.Ptr(schema.InfrequentActivity)
	}
}

// countRecentTags counts tags created within 365 days of the most recent
// commit. Anchoring to commit activity instead of wall-clock time keeps the
// count reproducible for historical snapshots.
func countRecentTags(tags []schema.TagRecord, timestamps []int64) int {
	if len(tags) == 0 || len(timestamps) == 0 {
		return 0
	}
	latestCommit := slices.Max(timestamps)
	oneYearAgo := latestCommit - 365*secondsPerDay

	count := 0
	for _, tag := range tags {
		if tag.Timestamp >= oneYearAgo {
			count++
		}
	}
	return count
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
