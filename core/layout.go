package core

import (
	"path"
	"regexp"
	"strings"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// maxListedPaths caps every artifact path list in the spec document.
const maxListedPaths = 20

// topLevelTags maps top-level directory names to layout tags.
var topLevelTags = map[string]string{
	"src":      "src-root",
	"app":      "single-app",
	"apps":     "multi-app",
	"packages": "monorepo-packages",
	"services": "services-folder",
	"modules":  "modules-folder",
	"cmd":      "go-cmd",
	"pkg":      "go-pkg",
	"internal": "go-internal",
	"backend":  "split-backend",
	"frontend": "split-frontend",
}

// serviceDirTags maps directory names (at any depth) to service markers.
var serviceDirTags = map[string]string{
	"routes":      "routes",
	"routers":     "routes",
	"controllers": "controllers",
	"api":         "api",
	"apis":        "api",
	"endpoints":   "api",
	"handlers":    "handlers",
	"services":    "services",
	"models":      "models",
	"schemas":     "schemas",
	"migrations":  "migrations",
	"db":          "database",
	"database":    "database",
	"domain":      "domain",
	"domains":     "domain",
}

// apiArtifactKind tells the classifier which API surface list a file joins.
type apiArtifactKind int

const (
	apiOpenAPI apiArtifactKind = iota
	apiRoutes
	apiCollection
)

// apiFilePattern pairs a path pattern with its artifact kind. Patterns are
// evaluated top-down; the first match classifies the file.
type apiFilePattern struct {
	pattern *regexp.Regexp
	kind    apiArtifactKind
}

var apiFilePatterns = []apiFilePattern{
	{regexp.MustCompile(`(?i)openapi`), apiOpenAPI},
	{regexp.MustCompile(`(?i)swagger`), apiOpenAPI},
	{regexp.MustCompile(`(?i)routes?.*\.(py|js|ts|tsx|go)$`), apiRoutes},
	{regexp.MustCompile(`(?i)router.*\.(py|js|ts|tsx)$`), apiRoutes},
	{regexp.MustCompile(`(?i)(postman|insomnia).*\.json$`), apiCollection},
}

// graphqlExtensions are file extensions recognized as GraphQL schemas.
var graphqlExtensions = map[string]struct{}{
	".graphql":  {},
	".gql":      {},
	".graphqls": {},
}

// dataFilePatterns match DDL and migration file paths.
var dataFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)schema\.(sql|prisma)$`),
	regexp.MustCompile(`(?i)schema\.(rb|py)$`),
	regexp.MustCompile(`(?i)migrations?.*\.(sql|py|ts|js)$`),
	regexp.MustCompile(`(?i)(ddl|tables?).*\.sql$`),
}

// ormFiles maps well-known ORM config filenames to their tool.
var ormFiles = map[string]string{
	"schema.prisma":        "prisma",
	"alembic.ini":          "alembic",
	"env.py":               "alembic-env",
	"ormconfig.json":       "typeorm",
	"ormconfig.js":         "typeorm",
	"knexfile.js":          "knex",
	"liquibase.properties": "liquibase",
	"flyway.conf":          "flyway",
}

// migrationDirNames flag a directory as migration-related by name.
var migrationDirNames = map[string]struct{}{
	"migrations": {},
	"migration":  {},
	"db":         {},
	"database":   {},
	"schema":     {},
}

// analyzeDirectoryLayout derives layout tags and service markers from the
// directory inventory.
func analyzeDirectoryLayout(inv *contract.RepoInventory) schema.StructureProfile {
	profile := schema.StructureProfile{
		TopLevelPatterns:   []string{},
		ServiceMarkers:     []string{},
		NotableDirectories: []string{},
	}

	seenTags := make(map[string]struct{})
	for _, dir := range inv.TopLevelDirs() {
		tag, ok := topLevelTags[strings.ToLower(dir)]
		if !ok {
			continue
		}
		if _, dup := seenTags[tag]; dup {
			continue
		}
		seenTags[tag] = struct{}{}
		profile.TopLevelPatterns = append(profile.TopLevelPatterns, tag)
	}

	markers := make(map[string]struct{})
	for _, dir := range inv.Directories {
		name := strings.ToLower(path.Base(dir))
		if marker, ok := serviceDirTags[name]; ok {
			markers[marker] = struct{}{}
			if len(profile.NotableDirectories) < maxListedPaths {
				profile.NotableDirectories = append(profile.NotableDirectories, dir)
			}
		}
	}
	profile.ServiceMarkers = sortedKeys(markers)
	return profile
}

// detectAPIArtifacts classifies files into the API surface lists.
func detectAPIArtifacts(inv *contract.RepoInventory) schema.APISurface {
	surface := schema.APISurface{
		OpenAPIFiles:      []string{},
		GraphQLFiles:      []string{},
		RouteFiles:        []string{},
		ClientCollections: []string{},
	}

	for _, f := range inv.Files {
		if _, ok := graphqlExtensions[strings.ToLower(path.Ext(f))]; ok {
			surface.GraphQLFiles = append(surface.GraphQLFiles, f)
			continue
		}
		for _, p := range apiFilePatterns {
			if !p.pattern.MatchString(f) {
				continue
			}
			switch p.kind {
			case apiOpenAPI:
				surface.OpenAPIFiles = append(surface.OpenAPIFiles, f)
			case apiCollection:
				surface.ClientCollections = append(surface.ClientCollections, f)
			default:
				surface.RouteFiles = append(surface.RouteFiles, f)
			}
			break
		}
	}

	surface.OpenAPIFiles = truncatePaths(surface.OpenAPIFiles)
	surface.GraphQLFiles = truncatePaths(surface.GraphQLFiles)
	surface.RouteFiles = truncatePaths(surface.RouteFiles)
	surface.ClientCollections = truncatePaths(surface.ClientCollections)
	return surface
}

// detectDataArtifacts classifies files and directories into the data asset lists.
func detectDataArtifacts(inv *contract.RepoInventory) schema.DataAssets {
	assets := schema.DataAssets{
		DDLFiles:      []string{},
		MigrationDirs: []string{},
		ORMConfigs:    []string{},
	}

	for _, f := range inv.Files {
		filename := strings.ToLower(path.Base(f))
		if tool, ok := ormFiles[filename]; ok {
			assets.ORMConfigs = append(assets.ORMConfigs, f+" ("+tool+")")
			continue
		}
		for _, pattern := range dataFilePatterns {
			if pattern.MatchString(f) {
				assets.DDLFiles = append(assets.DDLFiles, f)
				break
			}
		}
	}

	seen := make(map[string]struct{})
	for _, dir := range inv.Directories {
		name := strings.ToLower(path.Base(dir))
		_, known := migrationDirNames[name]
		if !known && !strings.Contains(name, "alembic") {
			continue
		}
		if _, dup := seen[dir]; dup {
			continue
		}
		seen[dir] = struct{}{}
		assets.MigrationDirs = append(assets.MigrationDirs, dir)
	}

	assets.DDLFiles = truncatePaths(assets.DDLFiles)
	assets.MigrationDirs = truncatePaths(assets.MigrationDirs)
	assets.ORMConfigs = truncatePaths(assets.ORMConfigs)
	return assets
}

// truncatePaths caps a path list, replacing the overflow with a "..." sentinel.
func truncatePaths(items []string) []string {
	if len(items) <= maxListedPaths {
		return items
	}
	return append(items[:maxListedPaths-1], "...")
}
