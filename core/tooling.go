package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/repolens/repolens/internal/contract"

	"github.com/pelletier/go-toml/v2"
)

// knownPackageManifests maps well-known manifest files to their package manager.
var knownPackageManifests = map[string]string{
	"package.json":     "npm",
	"pnpm-lock.yaml":   "pnpm",
	"yarn.lock":        "yarn",
	"poetry.lock":      "poetry",
	"pyproject.toml":   "python-pyproject",
	"Pipfile":          "pipenv",
	"requirements.txt": "pip",
	"go.mod":           "go-mod",
	"Cargo.toml":       "cargo",
	"Gemfile":          "bundler",
	"composer.json":    "composer",
}

// pyprojectLinterKeys maps pyproject tool sections to linter names.
var pyprojectLinterKeys = map[string]string{
	"tool.flake8": "flake8",
	"tool.ruff":   "ruff",
	"tool.pylint": "pylint",
}

// pyprojectFormatterKeys maps pyproject tool sections to formatter names.
var pyprojectFormatterKeys = map[string]string{
	"tool.black": "black",
	"tool.isort": "isort",
}

// detectPackageManagers reports package managers by manifest presence.
func detectPackageManagers(inv *contract.RepoInventory) []string {
	managers := make(map[string]struct{})
	for manifest, label := range knownPackageManifests {
		if inv.HasFile(manifest) {
			managers[label] = struct{}{}
		}
	}
	return sortedKeys(managers)
}

// readPyproject parses pyproject.toml into a generic map. Parse failures are
// treated as "no configuration", same as a missing file.
func readPyproject(root string) map[string]any {
	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return nil
	}
	var parsed map[string]any
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	return parsed
}

// readPackageJSONDeps collects dependency names across all dependency sections
// of package.json. Parse failures are treated as "no dependencies".
func readPackageJSONDeps(root string) map[string]struct{} {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var parsed struct {
		Dependencies     map[string]any `json:"dependencies"`
		DevDependencies  map[string]any `json:"devDependencies"`
		PeerDependencies map[string]any `json:"peerDependencies"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	deps := make(map[string]struct{})
	for _, section := range []map[string]any{parsed.Dependencies, parsed.DevDependencies, parsed.PeerDependencies} {
		for name := range section {
			deps[name] = struct{}{}
		}
	}
	return deps
}

// detectLinters reports linters from pyproject sections, package.json
// dependencies, and well-known config files.
func detectLinters(inv *contract.RepoInventory) []string {
	linters := make(map[string]struct{})

	pyproject := readPyproject(inv.Root)
	for key, name := range pyprojectLinterKeys {
		if nestedGet(pyproject, strings.Split(key, ".")) != nil {
			linters[name] = struct{}{}
		}
	}

	deps := readPackageJSONDeps(inv.Root)
	for _, candidate := range []string{"eslint", "stylelint", "tslint"} {
		if _, ok := deps[candidate]; ok {
			linters[candidate] = struct{}{}
		}
	}

	if inv.HasFile(".golangci.yml") {
		linters["golangci-lint"] = struct{}{}
	}
	return sortedKeys(linters)
}

// detectFormatters reports formatters from pyproject sections, package.json
// dependencies, and well-known config files.
func detectFormatters(inv *contract.RepoInventory) []string {
	formatters := make(map[string]struct{})

	pyproject := readPyproject(inv.Root)
	for key, name := range pyprojectFormatterKeys {
		if nestedGet(pyproject, strings.Split(key, ".")) != nil {
			formatters[name] = struct{}{}
		}
	}

	deps := readPackageJSONDeps(inv.Root)
	if _, ok := deps["prettier"]; ok {
		formatters["prettier"] = struct{}{}
	}

	if inv.HasFile(".rustfmt.toml") {
		formatters["rustfmt"] = struct{}{}
	}
	if inv.HasFile(".clang-format") {
		formatters["clang-format"] = struct{}{}
	}
	return sortedKeys(formatters)
}

// detectTestFrameworks reports test frameworks from dependencies and marker files.
func detectTestFrameworks(inv *contract.RepoInventory) []string {
	frameworks := make(map[string]struct{})

	deps := readPackageJSONDeps(inv.Root)
	for _, candidate := range []string{"jest", "vitest", "cypress", "playwright", "mocha"} {
		if _, ok := deps[candidate]; ok {
			frameworks[candidate] = struct{}{}
		}
	}

	pyproject := readPyproject(inv.Root)
	if nestedGet(pyproject, []string{"tool", "pytest"}) != nil || inv.HasFile("pytest.ini") {
		frameworks["pytest"] = struct{}{}
	}
	if inv.HasFile("tox.ini") {
		frameworks["tox"] = struct{}{}
	}
	if inv.HasFile("nose.cfg") {
		frameworks["nose"] = struct{}{}
	}
	if inv.HasFile("go.mod") {
		frameworks["go test"] = struct{}{}
	}
	return sortedKeys(frameworks)
}

// detectCISystems reports CI systems from their marker files and directories.
func detectCISystems(inv *contract.RepoInventory) []string {
	systems := make(map[string]struct{})

	for _, f := range inv.Files {
		if strings.HasPrefix(f, ".github/workflows/") {
			systems["github-actions"] = struct{}{}
			break
		}
	}
	if inv.HasFile(".gitlab-ci.yml") {
		systems["gitlab-ci"] = struct{}{}
	}
	if inv.HasFile("azure-pipelines.yml") {
		systems["azure-pipelines"] = struct{}{}
	}
	for _, dir := range inv.Directories {
		switch dir {
		case ".circleci":
			systems["circleci"] = struct{}{}
		case ".buildkite":
			systems["buildkite"] = struct{}{}
		}
	}
	return sortedKeys(systems)
}

// detectSecurityTools reports security scanners from their config files.
func detectSecurityTools(inv *contract.RepoInventory) []string {
	tools := make(map[string]struct{})
	if inv.HasFile("bandit.yaml") || inv.HasFile(".bandit") {
		tools["bandit"] = struct{}{}
	}
	if inv.HasFile(".semgrep.yml") {
		tools["semgrep"] = struct{}{}
	}
	if inv.HasFile("snyk.json") {
		tools["snyk"] = struct{}{}
	}
	if inv.HasFile("cargo-audit.toml") {
		tools["cargo-audit"] = struct{}{}
	}
	return sortedKeys(tools)
}

// nestedGet walks a parsed document along the given key path.
func nestedGet(data map[string]any, keys []string) any {
	var cursor any = data
	for _, key := range keys {
		m, ok := cursor.(map[string]any)
		if !ok {
			return nil
		}
		cursor, ok = m[key]
		if !ok {
			return nil
		}
	}
	return cursor
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
