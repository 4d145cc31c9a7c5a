package contract

import (
	"context"

	"github.com/repolens/repolens/schema"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []interface{}{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// CommitTimestamps implements the GitClient interface.
func (m *MockGitClient) CommitTimestamps(ctx context.Context, repoPath string, maxCommits int) ([]int64, error) {
	ret := m.Called(ctx, repoPath, maxCommits)
	timestamps, _ := ret.Get(0).([]int64)
	return timestamps, ret.Error(1)
}

// CommitAuthors implements the GitClient interface.
func (m *MockGitClient) CommitAuthors(ctx context.Context, repoPath string, maxCommits int) ([]string, error) {
	ret := m.Called(ctx, repoPath, maxCommits)
	authors, _ := ret.Get(0).([]string)
	return authors, ret.Error(1)
}

// CommitSubjects implements the GitClient interface.
func (m *MockGitClient) CommitSubjects(ctx context.Context, repoPath string, maxCommits int) ([]string, error) {
	ret := m.Called(ctx, repoPath, maxCommits)
	subjects, _ := ret.Get(0).([]string)
	return subjects, ret.Error(1)
}

// Branches implements the GitClient interface.
func (m *MockGitClient) Branches(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	branches, _ := ret.Get(0).([]string)
	return branches, ret.Error(1)
}

// Tags implements the GitClient interface.
func (m *MockGitClient) Tags(ctx context.Context, repoPath string) ([]schema.TagRecord, error) {
	ret := m.Called(ctx, repoPath)
	tags, _ := ret.Get(0).([]schema.TagRecord)
	return tags, ret.Error(1)
}
