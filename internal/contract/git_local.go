package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/repolens/repolens/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CommitTimestamps implements the GitClient interface.
func (c *LocalGitClient) CommitTimestamps(ctx context.Context, repoPath string, maxCommits int) ([]int64, error) {
	args := []string{
		"log",
		fmt.Sprintf("-n%d", maxCommits),
		"--pretty=%ct",
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	var timestamps []int64
	for _, line := range splitNonEmptyLines(out) {
		ts, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			continue
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps, nil
}

// CommitAuthors implements the GitClient interface.
func (c *LocalGitClient) CommitAuthors(ctx context.Context, repoPath string, maxCommits int) ([]string, error) {
	args := []string{
		"log",
		fmt.Sprintf("-n%d", maxCommits),
		"--pretty=%an <%ae>",
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var authors []string
	for _, line := range splitNonEmptyLines(out) {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		authors = append(authors, line)
	}
	return authors, nil
}

// CommitSubjects implements the GitClient interface.
func (c *LocalGitClient) CommitSubjects(ctx context.Context, repoPath string, maxCommits int) ([]string, error) {
	args := []string{
		"log",
		fmt.Sprintf("-n%d", maxCommits),
		"--pretty=%s",
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

// Branches implements the GitClient interface. Local branches are kept as-is;
// remote branches are kept only for origin, with the "remotes/origin/" prefix
// stripped so they compare equal to their local counterparts.
func (c *LocalGitClient) Branches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "branch", "-a")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		branch := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if branch == "" {
			continue
		}
		if strings.HasPrefix(branch, "remotes/") {
			if !strings.HasPrefix(branch, "remotes/origin/") {
				continue
			}
			branch = strings.TrimPrefix(branch, "remotes/origin/")
		}
		if _, ok := seen[branch]; ok {
			continue
		}
		seen[branch] = struct{}{}
		branches = append(branches, branch)
	}
	return branches, nil
}

// Tags implements the GitClient interface. Tags with unparseable timestamps
// are skipped.
func (c *LocalGitClient) Tags(ctx context.Context, repoPath string) ([]schema.TagRecord, error) {
	args := []string{
		"tag", "-l",
		"--format=%(refname:short)|%(creatordate:unix)",
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	var tags []schema.TagRecord
	for _, line := range splitNonEmptyLines(out) {
		name, tsStr, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			continue
		}
		tags = append(tags, schema.TagRecord{Name: name, Timestamp: ts})
	}
	return tags, nil
}

// splitNonEmptyLines splits command output into trimmed, non-empty lines.
func splitNonEmptyLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
