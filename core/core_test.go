package core

import (
	"testing"

	"github.com/repolens/repolens/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestBuildRefiner(t *testing.T) {
	t.Run("disabled refinement", func(t *testing.T) {
		cfg := &contract.Config{Refine: false, LLMAPIKey: "sk-test"}
		assert.Nil(t, BuildRefiner(cfg))
	})

	t.Run("enabled without api key", func(t *testing.T) {
		cfg := &contract.Config{Refine: true}
		assert.Nil(t, BuildRefiner(cfg))
	})

	t.Run("enabled with api key", func(t *testing.T) {
		cfg := &contract.Config{
			Refine:     true,
			LLMModel:   contract.DefaultLLMModel,
			LLMBaseURL: contract.DefaultLLMBaseURL,
			LLMAPIKey:  "sk-test",
		}
		assert.NotNil(t, BuildRefiner(cfg))
	})
}
