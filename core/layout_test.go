package core

import (
	"fmt"
	"testing"

	"github.com/repolens/repolens/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDirectoryLayout(t *testing.T) {
	t.Run("top-level tags and service markers", func(t *testing.T) {
		inv := &contract.RepoInventory{
			Root: "/tmp/demo",
			Directories: []string{
				"cmd",
				"internal",
				"internal/api",
				"src",
				"src/controllers",
				"src/models",
				"docs",
			},
		}
		profile := analyzeDirectoryLayout(inv)
		assert.Equal(t, []string{"go-cmd", "go-internal", "src-root"}, profile.TopLevelPatterns)
		assert.Equal(t, []string{"api", "controllers", "models"}, profile.ServiceMarkers)
		assert.Equal(t, []string{"internal/api", "src/controllers", "src/models"}, profile.NotableDirectories)
	})

	t.Run("duplicate markers collapse", func(t *testing.T) {
		inv := &contract.RepoInventory{
			Directories: []string{"api", "apis", "endpoints"},
		}
		profile := analyzeDirectoryLayout(inv)
		assert.Equal(t, []string{"api"}, profile.ServiceMarkers)
	})

	t.Run("empty inventory yields empty slices", func(t *testing.T) {
		profile := analyzeDirectoryLayout(&contract.RepoInventory{})
		assert.Equal(t, []string{}, profile.TopLevelPatterns)
		assert.Equal(t, []string{}, profile.ServiceMarkers)
		assert.Equal(t, []string{}, profile.NotableDirectories)
	})
}

func TestDetectAPIArtifacts(t *testing.T) {
	inv := &contract.RepoInventory{
		Files: []string{
			"docs/openapi.yaml",
			"api/swagger.json",
			"app/routes.py",
			"web/router.ts",
			"schema/types.graphql",
			"collections/postman_collection.json",
			"README.md",
		},
	}
	surface := detectAPIArtifacts(inv)
	assert.Equal(t, []string{"docs/openapi.yaml", "api/swagger.json"}, surface.OpenAPIFiles)
	assert.Equal(t, []string{"schema/types.graphql"}, surface.GraphQLFiles)
	assert.Equal(t, []string{"app/routes.py", "web/router.ts"}, surface.RouteFiles)
	assert.Equal(t, []string{"collections/postman_collection.json"}, surface.ClientCollections)
}

func TestDetectDataArtifacts(t *testing.T) {
	inv := &contract.RepoInventory{
		Files: []string{
			"db/schema.sql",
			"db/migrations/0001_init.sql",
			"prisma/schema.prisma",
			"alembic.ini",
			"README.md",
		},
		Directories: []string{
			"db",
			"db/migrations",
			"alembic_versions",
			"src",
		},
	}
	assets := detectDataArtifacts(inv)
	assert.Equal(t, []string{"db/schema.sql", "db/migrations/0001_init.sql"}, assets.DDLFiles)
	assert.Equal(t, []string{"prisma/schema.prisma (prisma)", "alembic.ini (alembic)"}, assets.ORMConfigs)
	assert.Equal(t, []string{"db", "db/migrations", "alembic_versions"}, assets.MigrationDirs)
}

func TestTruncatePaths(t *testing.T) {
	t.Run("short lists pass through", func(t *testing.T) {
		items := []string{"a", "b"}
		assert.Equal(t, items, truncatePaths(items))
	})

	t.Run("overflow replaced with sentinel", func(t *testing.T) {
		items := make([]string, maxListedPaths+5)
		for i := range items {
			items[i] = fmt.Sprintf("file-%02d.sql", i)
		}
		got := truncatePaths(items)
		assert.Len(t, got, maxListedPaths)
		assert.Equal(t, "...", got[maxListedPaths-1])
		assert.Equal(t, "file-00.sql", got[0])
	})
}
