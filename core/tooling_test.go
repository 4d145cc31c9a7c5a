package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/repolens/repolens/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture creates a file (and its parent directories) under root.
func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func scanFixture(t *testing.T, root string) *contract.RepoInventory {
	t.Helper()
	inv, err := contract.ScanRepo(root)
	require.NoError(t, err)
	return inv
}

func TestDetectPackageManagers(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "go.mod", "module example.com/demo\n")
	writeFixture(t, root, "package.json", "{}\n")
	writeFixture(t, root, "pyproject.toml", "[project]\nname = \"demo\"\n")

	inv := scanFixture(t, root)
	assert.Equal(t, []string{"go-mod", "npm", "python-pyproject"}, detectPackageManagers(inv))
}

func TestDetectLinters(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "pyproject.toml", `
[tool.ruff]
line-length = 100

[tool.black]
line-length = 100
`)
	writeFixture(t, root, "package.json", `{"devDependencies": {"eslint": "^9.0.0", "prettier": "^3.0.0"}}`)
	writeFixture(t, root, ".golangci.yml", "run:\n  timeout: 5m\n")

	inv := scanFixture(t, root)
	assert.Equal(t, []string{"eslint", "golangci-lint", "ruff"}, detectLinters(inv))
}

func TestDetectFormatters(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "pyproject.toml", "[tool.black]\nline-length = 100\n")
	writeFixture(t, root, "package.json", `{"devDependencies": {"prettier": "^3.0.0"}}`)

	inv := scanFixture(t, root)
	assert.Equal(t, []string{"black", "prettier"}, detectFormatters(inv))
}

func TestDetectTestFrameworks(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "pyproject.toml", "[tool.pytest.ini_options]\naddopts = \"-q\"\n")
	writeFixture(t, root, "package.json", `{"devDependencies": {"jest": "^29.0.0"}}`)
	writeFixture(t, root, "go.mod", "module example.com/demo\n")
	writeFixture(t, root, "tox.ini", "[tox]\n")

	inv := scanFixture(t, root)
	assert.Equal(t, []string{"go test", "jest", "pytest", "tox"}, detectTestFrameworks(inv))
}

func TestDetectCISystems(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, ".github/workflows/ci.yml", "name: ci\n")
	writeFixture(t, root, ".gitlab-ci.yml", "stages: [test]\n")
	writeFixture(t, root, ".circleci/config.yml", "version: 2.1\n")

	inv := scanFixture(t, root)
	assert.Equal(t, []string{"circleci", "github-actions", "gitlab-ci"}, detectCISystems(inv))
}

func TestDetectSecurityTools(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, ".bandit", "[bandit]\n")
	writeFixture(t, root, ".semgrep.yml", "rules: []\n")

	inv := scanFixture(t, root)
	assert.Equal(t, []string{"bandit", "semgrep"}, detectSecurityTools(inv))
}

func TestToolingWithMalformedManifests(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "pyproject.toml", "not [valid toml\n")
	writeFixture(t, root, "package.json", "{broken json")

	inv := scanFixture(t, root)
	assert.Empty(t, detectLinters(inv))
	assert.Empty(t, detectFormatters(inv))
	assert.Empty(t, detectTestFrameworks(inv))
}
