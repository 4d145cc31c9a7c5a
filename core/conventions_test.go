package core

import (
	"testing"

	"github.com/repolens/repolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCommitConvention(t *testing.T) {
	t.Run("conventional commits majority", func(t *testing.T) {
		subjects := []string{
			"feat: add login",
			"fix(auth): handle expired tokens",
			"docs: update readme",
			"random tweak",
		}
		got := detectCommitConvention(subjects)
		require.NotNil(t, got)
		assert.Equal(t, schema.ConventionalCommits, *got)
	})

	t.Run("angular style via breaking-change markers", func(t *testing.T) {
		subjects := []string{
			"feat!: drop legacy API",
			"fix!: remove deprecated flag",
			"chore: bump deps",
		}
		got := detectCommitConvention(subjects)
		require.NotNil(t, got)
		assert.Equal(t, schema.AngularStyle, *got)
	})

	t.Run("below majority threshold", func(t *testing.T) {
		subjects := []string{
			"feat: one structured subject",
			"fixed the build",
			"more work",
			"wip",
		}
		assert.Nil(t, detectCommitConvention(subjects))
	})

	t.Run("merge-heavy history", func(t *testing.T) {
		subjects := []string{
			"Merge pull request #42 from org/feature",
			"Merge branch 'develop'",
			"tweak config",
		}
		assert.Nil(t, detectCommitConvention(subjects))
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		subjects := []string{"Feat: shout", "FIX: louder"}
		got := detectCommitConvention(subjects)
		require.NotNil(t, got)
		assert.Equal(t, schema.ConventionalCommits, *got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, detectCommitConvention(nil))
	})
}

func TestDetectTagNamingConvention(t *testing.T) {
	makeTags := func(names ...string) []schema.TagRecord {
		tags := make([]schema.TagRecord, len(names))
		for i, name := range names {
			tags[i] = schema.TagRecord{Name: name}
		}
		return tags
	}

	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"semantic versioning", []string{"v1.0.0", "v1.1.0", "2.0.0-rc.1"}, schema.SemanticVersioning},
		{"calendar versioning", []string{"2024.01", "2024.02.15", "2024-03"}, schema.CalendarVersioning},
		{"simple versioning", []string{"v1", "release2", "r3.1"}, schema.SimpleVersioning},
		{"date based", []string{"20240101", "20240215"}, schema.DateBasedTags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectTagNamingConvention(makeTags(tt.tags...))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	t.Run("semantic wins overlap with simple", func(t *testing.T) {
		// "v1.2.3" matches both families; the semantic family is checked first
		got := detectTagNamingConvention(makeTags("v1.2.3", "v2.0.0"))
		require.NotNil(t, got)
		assert.Equal(t, schema.SemanticVersioning, *got)
	})

	t.Run("mixed below threshold", func(t *testing.T) {
		assert.Nil(t, detectTagNamingConvention(makeTags("v1.0.0", "2024.01", "milestone", "beta")))
	})

	t.Run("no tags", func(t *testing.T) {
		assert.Nil(t, detectTagNamingConvention(nil))
	})
}
