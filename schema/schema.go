// Package schema has configs, models and shared constants for all parts of repolens.
package schema

import "time"

// SpecVersion is the version of the generated spec document layout.
const SpecVersion = "0.1.0"

// TagRecord is a git tag paired with its creation time as a unix timestamp.
type TagRecord struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// HistoryMetrics is the output of the history inference engine. Every field is
// derived from git history alone. Nil pointers and empty slices mean "no signal";
// a repository without usable git history yields the zero value of this struct.
type HistoryMetrics struct {
	AvgCommitsPerWeek   *float64        `json:"average_commits_per_week" yaml:"commit_cadence_per_week"`
	ActiveContributors  *int            `json:"active_contributors" yaml:"active_contributors"`
	ReleaseSignal       *ReleaseSignal  `json:"release_signal" yaml:"release_signal"`
	BranchStrategy      *BranchStrategy `json:"branch_strategy" yaml:"branch_strategy"`
	BranchTypes         []string        `json:"branch_types" yaml:"branch_types"`
	CommitConvention    *string         `json:"commit_convention" yaml:"commit_convention"`
	BranchNamingPattern *string         `json:"branch_naming_pattern" yaml:"branch_naming_pattern"`
	TagNamingConvention *string         `json:"tag_naming_convention" yaml:"tag_naming_convention"`
	RecentTagsCount     *int            `json:"recent_tags_count" yaml:"recent_tags_count"`
}

// ConventionFindings holds the three convention fields that both the rule-based
// matchers and the LLM refiner produce. A nil field means "no opinion".
type ConventionFindings struct {
	CommitConvention    *string `json:"commit_convention"`
	BranchNamingPattern *string `json:"branch_naming_pattern"`
	TagNamingConvention *string `json:"tag_naming_convention"`
}

// LanguageUsage summarizes one language's share of the repository files.
type LanguageUsage struct {
	Language string  `json:"language" yaml:"language"`
	Ratio    float64 `json:"ratio" yaml:"ratio"`
	Files    int     `json:"files" yaml:"files"`
}

// ToolingProfile lists developer tooling discovered from well-known manifests.
type ToolingProfile struct {
	PackageManagers []string `json:"package_managers" yaml:"package_managers"`
	Formatters      []string `json:"formatters" yaml:"formatters"`
	Linters         []string `json:"linters" yaml:"linters"`
	TestFrameworks  []string `json:"test_frameworks" yaml:"test_frameworks"`
	CISystems       []string `json:"ci_systems" yaml:"ci_systems"`
}

// QualityGates lists quality enforcement signals discovered in the repository.
type QualityGates struct {
	RequiredChecks []string `json:"required_checks" yaml:"required_checks"`
	SecurityTools  []string `json:"security_tools" yaml:"security_tools"`
}

// StructureProfile describes the directory layout of the repository.
type StructureProfile struct {
	TopLevelPatterns   []string `json:"top_level_patterns" yaml:"top_level_patterns"`
	ServiceMarkers     []string `json:"service_markers" yaml:"service_markers"`
	NotableDirectories []string `json:"notable_directories" yaml:"notable_directories"`
}

// APISurface lists API definition artifacts found in the repository.
type APISurface struct {
	OpenAPIFiles      []string `json:"openapi_files" yaml:"openapi_files"`
	GraphQLFiles      []string `json:"graphql_files" yaml:"graphql_files"`
	RouteFiles        []string `json:"route_files" yaml:"route_files"`
	ClientCollections []string `json:"client_collections" yaml:"client_collections"`
}

// DataAssets lists database and persistence artifacts found in the repository.
type DataAssets struct {
	DDLFiles      []string `json:"ddl_files" yaml:"ddl_files"`
	MigrationDirs []string `json:"migration_dirs" yaml:"migration_dirs"`
	ORMConfigs    []string `json:"orm_configs" yaml:"orm_configs"`
}

// SpecMetadata records provenance for a generated spec document.
type SpecMetadata struct {
	SpecVersion string `json:"spec_version" yaml:"spec_version"`
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Repository  string `json:"repository" yaml:"repository"`
}

// SpecDocument is the full inferred repository specification. The workflow
// section is the history engine's HistoryMetrics; everything else comes from
// filesystem detectors.
type SpecDocument struct {
	Metadata      SpecMetadata       `json:"metadata" yaml:"metadata"`
	LanguageStack []LanguageUsage    `json:"language_stack" yaml:"language_stack"`
	Tooling       ToolingProfile     `json:"tooling" yaml:"tooling"`
	Workflow      HistoryMetrics     `json:"workflow" yaml:"workflow"`
	QualityGates  QualityGates       `json:"quality_gates" yaml:"quality_gates"`
	Structure     StructureProfile   `json:"structure" yaml:"structure"`
	APISurface    APISurface         `json:"api_surface" yaml:"api_surface"`
	DataAssets    DataAssets         `json:"data_assets" yaml:"data_assets"`
	Confidence    map[string]float64 `json:"confidence" yaml:"confidence"`
	Notes         []string           `json:"notes" yaml:"notes"`
}

// NewSpecDocument returns a base document that detectors can enrich.
func NewSpecDocument(repoPath string) *SpecDocument {
	return &SpecDocument{
		Metadata: SpecMetadata{
			SpecVersion: SpecVersion,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Repository:  repoPath,
		},
		LanguageStack: []LanguageUsage{},
		Tooling: ToolingProfile{
			PackageManagers: []string{},
			Formatters:      []string{},
			Linters:         []string{},
			TestFrameworks:  []string{},
			CISystems:       []string{},
		},
		QualityGates: QualityGates{RequiredChecks: []string{}, SecurityTools: []string{}},
		Structure: StructureProfile{
			TopLevelPatterns:   []string{},
			ServiceMarkers:     []string{},
			NotableDirectories: []string{},
		},
		APISurface: APISurface{
			OpenAPIFiles:      []string{},
			GraphQLFiles:      []string{},
			RouteFiles:        []string{},
			ClientCollections: []string{},
		},
		DataAssets: DataAssets{
			DDLFiles:      []string{},
			MigrationDirs: []string{},
			ORMConfigs:    []string{},
		},
		Confidence: map[string]float64{},
		Notes:      []string{},
	}
}

// RegisterConfidence stores a confidence score for a spec section, clamped to [0, 1].
func (s *SpecDocument) RegisterConfidence(key string, value float64) {
	if s.Confidence == nil {
		s.Confidence = map[string]float64{}
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	s.Confidence[key] = value
}
