package core

import (
	"context"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// InferSpec assembles the full repository spec document: one filesystem scan
// feeding the language/tooling/layout detectors, plus the git history engine
// for the workflow section. The second return value reports whether the
// workflow conventions were refined.
func InferSpec(ctx context.Context, client contract.GitClient, refiner contract.ConventionRefiner, repoPath string, maxCommits int) (*schema.SpecDocument, bool, error) {
	inv, err := contract.ScanRepo(repoPath)
	if err != nil {
		return nil, false, err
	}

	spec := schema.NewSpecDocument(inv.Root)

	languages := detectLanguages(inv.Files)
	spec.LanguageStack = summarizeLanguageUsage(languages)
	spec.RegisterConfidence("language_stack", evidenceScore(0.2, 0.6, len(languages) > 0))

	managers := detectPackageManagers(inv)
	spec.Tooling.PackageManagers = managers
	spec.RegisterConfidence("tooling.package_managers", evidenceScore(0.3, 0.5, len(managers) > 0))

	formatters := detectFormatters(inv)
	spec.Tooling.Formatters = formatters
	linters := detectLinters(inv)
	spec.Tooling.Linters = linters
	tests := detectTestFrameworks(inv)
	spec.Tooling.TestFrameworks = tests
	ciSystems := detectCISystems(inv)
	spec.Tooling.CISystems = ciSystems
	spec.QualityGates.SecurityTools = detectSecurityTools(inv)

	spec.RegisterConfidence("tooling.linters", evidenceScore(0.3, 0.5, len(linters) > 0))
	spec.RegisterConfidence("tooling.formatters", evidenceScore(0.3, 0.5, len(formatters) > 0))
	spec.RegisterConfidence("tooling.test_frameworks", evidenceScore(0.3, 0.5, len(tests) > 0))
	spec.RegisterConfidence("tooling.ci_systems", evidenceScore(0.2, 0.6, len(ciSystems) > 0))

	workflow, refined := AnalyzeHistory(ctx, client, refiner, inv.Root, maxCommits)
	spec.Workflow = *workflow
	spec.RegisterConfidence("workflow.history", evidenceScore(0.2, 0.6,
		workflow.AvgCommitsPerWeek != nil ||
			workflow.BranchStrategy != nil ||
			workflow.CommitConvention != nil ||
			workflow.BranchNamingPattern != nil))

	for _, system := range ciSystems {
		spec.QualityGates.RequiredChecks = append(spec.QualityGates.RequiredChecks, system+"-default")
	}

	spec.Structure = analyzeDirectoryLayout(inv)
	spec.RegisterConfidence("structure", evidenceScore(0.3, 0.5, len(spec.Structure.TopLevelPatterns) > 0))

	spec.APISurface = detectAPIArtifacts(inv)
	spec.RegisterConfidence("api_surface", evidenceScore(0.2, 0.6,
		len(spec.APISurface.OpenAPIFiles) > 0 ||
			len(spec.APISurface.GraphQLFiles) > 0 ||
			len(spec.APISurface.RouteFiles) > 0))

	spec.DataAssets = detectDataArtifacts(inv)
	spec.RegisterConfidence("data_assets", evidenceScore(0.2, 0.6,
		len(spec.DataAssets.DDLFiles) > 0 || len(spec.DataAssets.MigrationDirs) > 0))

	return spec, refined, nil
}

// evidenceScore is the confidence formula shared by all spec sections: a base
// score for having looked, plus a bonus when evidence was found.
func evidenceScore(base, bonus float64, found bool) float64 {
	if found {
		return base + bonus
	}
	return base
}
