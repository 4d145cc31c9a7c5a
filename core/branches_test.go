package core

import (
	"testing"

	"github.com/repolens/repolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBranchStrategy(t *testing.T) {
	tests := []struct {
		name     string
		branches []string
		want     *schema.BranchStrategy
	}{
		{
			name:     "git flow",
			branches: []string{"main", "develop", "feature/login", "release/1.0"},
			want:     schema.Ptr(schema.GitFlow),
		},
		{
			name:     "develop with hotfix is still git flow",
			branches: []string{"develop", "hotfix/crash"},
			want:     schema.Ptr(schema.GitFlow),
		},
		{
			name:     "github flow with develop",
			branches: []string{"main", "develop"},
			want:     schema.Ptr(schema.GitHubFlowWithDevelop),
		},
		{
			name:     "feature branch workflow",
			branches: []string{"main", "feature/login"},
			want:     schema.Ptr(schema.FeatureBranch),
		},
		{
			name:     "trunk based",
			branches: []string{"main"},
			want:     schema.Ptr(schema.TrunkBased),
		},
		{
			name:     "master counts as main",
			branches: []string{"master"},
			want:     schema.Ptr(schema.TrunkBased),
		},
		{
			name:     "no recognizable branches",
			branches: []string{"wip", "experiment"},
			want:     nil,
		},
		{
			name:     "empty input",
			branches: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectBranchStrategy(tt.branches)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDetectBranchTypes(t *testing.T) {
	t.Run("mixed local and remote branches", func(t *testing.T) {
		branches := []string{
			"main",
			"HEAD -> main",
			"remotes/origin/feature/login",
			"fix-typo-123",
			"origin/hotfix123",
			"develop",
		}
		assert.Equal(t, []string{"feature", "fix", "hotfix"}, detectBranchTypes(branches))
	})

	t.Run("first match wins for overlapping prefixes", func(t *testing.T) {
		// "feature-x" matches "feature" before "feat" is considered
		assert.Equal(t, []string{"feature"}, detectBranchTypes([]string{"feature-x"}))
	})

	t.Run("bugfix as bare token", func(t *testing.T) {
		assert.Equal(t, []string{"bugfix"}, detectBranchTypes([]string{"bugfix42"}))
	})

	t.Run("only base branches", func(t *testing.T) {
		assert.Equal(t, []string{}, detectBranchTypes([]string{"main", "develop", "staging"}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, []string{}, detectBranchTypes(nil))
	})
}

func TestDetectBranchNamingPattern(t *testing.T) {
	t.Run("slash patterns", func(t *testing.T) {
		branches := []string{"main", "feature/login", "feature/signup", "fix/typo"}
		got := detectBranchNamingPattern(branches)
		require.NotNil(t, got)
		assert.Equal(t, "feature/{name}, fix/{name}", *got)
	})

	t.Run("dash pattern", func(t *testing.T) {
		branches := []string{"main", "bugfix-123", "bugfix-456"}
		got := detectBranchNamingPattern(branches)
		require.NotNil(t, got)
		assert.Equal(t, "bugfix-{name}", *got)
	})

	t.Run("feature wins over feat", func(t *testing.T) {
		branches := []string{"feat/x", "feature/y"}
		got := detectBranchNamingPattern(branches)
		require.NotNil(t, got)
		assert.Equal(t, "feature/{name}", *got)
	})

	t.Run("generic dash fallback", func(t *testing.T) {
		branches := []string{"john-wip", "mary-spike", "alpha-two"}
		got := detectBranchNamingPattern(branches)
		require.NotNil(t, got)
		assert.Equal(t, "{type}-{name}", *got)
	})

	t.Run("generic slash fallback", func(t *testing.T) {
		branches := []string{"john/wip", "mary/spike", "alpha/two"}
		got := detectBranchNamingPattern(branches)
		require.NotNil(t, got)
		assert.Equal(t, "{type}/{name}", *got)
	})

	t.Run("no dominant pattern", func(t *testing.T) {
		assert.Nil(t, detectBranchNamingPattern([]string{"alpha", "beta", "gamma"}))
	})

	t.Run("only base branches", func(t *testing.T) {
		assert.Nil(t, detectBranchNamingPattern([]string{"main", "develop"}))
	})
}

func TestNonBaseBranches(t *testing.T) {
	branches := []string{
		"main",
		"HEAD -> origin/main",
		"remotes/origin/feature/login",
		"origin/develop",
		"",
		"wip",
	}
	assert.Equal(t, []string{"feature/login", "wip"}, nonBaseBranches(branches))
}
