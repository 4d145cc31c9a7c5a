package schema

// Custom string types for type safety.
type (
	// ReleaseSignal represents the inferred release rhythm of a repository.
	ReleaseSignal string

	// BranchStrategy represents the inferred branching model of a repository.
	BranchStrategy string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// Release signals derived from tag timestamps.
const (
	TaggedRelease     ReleaseSignal = "tagged" // single tag, no rhythm yet
	FrequentReleases  ReleaseSignal = "frequent-releases"
	MonthlyReleases   ReleaseSignal = "monthly-releases"
	QuarterlyReleases ReleaseSignal = "quarterly-releases"
	InfrequentRelease ReleaseSignal = "infrequent-releases"
)

// Release signals derived from commit activity when no tags exist.
const (
	FastIteration      ReleaseSignal = "fast-iteration"
	WeeklyActivity     ReleaseSignal = "weekly-activity"
	MonthlyActivity    ReleaseSignal = "monthly-activity"
	InfrequentActivity ReleaseSignal = "infrequent-activity"
)

// All branching models detected.
const (
	GitFlow               BranchStrategy = "git-flow"
	GitHubFlowWithDevelop BranchStrategy = "github-flow-with-develop"
	FeatureBranch         BranchStrategy = "feature-branch"
	TrunkBased            BranchStrategy = "trunk-based"
)

// All output modes supported.
const (
	TextOut OutputMode = "text"
	JSONOut OutputMode = "json"
	YAMLOut OutputMode = "yaml" // default for infer
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	YAMLOut: {},
}

// ValidRunBackends lists all valid run store backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Commit message conventions reported by the matchers.
const (
	ConventionalCommits = "conventional-commits"
	AngularStyle        = "angular-style"
)

// Tag naming conventions reported by the matchers.
const (
	SemanticVersioning = "semantic-versioning"
	CalendarVersioning = "calendar-versioning"
	SimpleVersioning   = "simple-versioning"
	DateBasedTags      = "date-based"
)
