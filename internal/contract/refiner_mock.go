package contract

import (
	"context"

	"github.com/repolens/repolens/schema"

	"github.com/stretchr/testify/mock"
)

// MockConventionRefiner is a testify mock for the ConventionRefiner type.
type MockConventionRefiner struct {
	mock.Mock
}

var _ ConventionRefiner = &MockConventionRefiner{} // Compile-time check

// Refine implements the ConventionRefiner interface.
func (m *MockConventionRefiner) Refine(ctx context.Context, sample RefineSample) (schema.ConventionFindings, error) {
	ret := m.Called(ctx, sample)
	findings, _ := ret.Get(0).(schema.ConventionFindings)
	return findings, ret.Error(1)
}
