// Package llm refines rule-based convention findings via an OpenAI-compatible
// chat completions endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
)

// requestTimeout caps the single blocking refinement call. A timeout means
// "feature unavailable this run", never a retry.
const requestTimeout = 60 * time.Second

const systemPrompt = "You are a git workflow analyzer. Analyze git history patterns and return JSON only."

// ErrNoAPIKey is returned by NewRefiner when no credentials are available.
var ErrNoAPIKey = errors.New("no API key provided for the convention refiner")

// Refiner implements contract.ConventionRefiner against any endpoint speaking
// the OpenAI chat completions protocol.
type Refiner struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

var _ contract.ConventionRefiner = &Refiner{} // Compile-time check

// NewRefiner creates a refiner for the given endpoint. It fails only on
// missing credentials; callers treat that as "refiner unavailable" and keep
// their rule-based results.
func NewRefiner(baseURL, model, apiKey string) (*Refiner, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &Refiner{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

// chatRequest is the OpenAI-compatible request body.
type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat chatFormat    `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFormat struct {
	Type string `json:"type"`
}

// chatResponse is the subset of the completion response the refiner reads.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Refine implements the contract.ConventionRefiner interface. Any transport,
// HTTP, or parse failure surfaces as an error so the caller can fall back to
// its rule-based findings.
func (r *Refiner) Refine(ctx context.Context, sample contract.RefineSample) (schema.ConventionFindings, error) {
	payload := chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(sample)},
		},
		Temperature:    0.3,
		ResponseFormat: chatFormat{Type: "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return schema.ConventionFindings{}, fmt.Errorf("failed to encode refinement request: %w", err)
	}

	url := r.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return schema.ConventionFindings{}, fmt.Errorf("failed to build refinement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return schema.ConventionFindings{}, fmt.Errorf("refinement request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return schema.ConventionFindings{}, fmt.Errorf("refinement endpoint returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return schema.ConventionFindings{}, fmt.Errorf("failed to decode refinement response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return schema.ConventionFindings{}, errors.New("empty refinement response")
	}

	var findings schema.ConventionFindings
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &findings); err != nil {
		return schema.ConventionFindings{}, fmt.Errorf("refinement content is not valid JSON: %w", err)
	}
	return findings, nil
}

// buildPrompt renders the evidence sample into the analysis prompt.
func buildPrompt(sample contract.RefineSample) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following git history data and infer the project's development conventions.\n\n")

	fmt.Fprintf(&sb, "Commit message samples (%d most recent):\n%s\n\n",
		len(sample.CommitSubjects), bulletList(sample.CommitSubjects))
	fmt.Fprintf(&sb, "Branch name samples (%d):\n%s\n\n",
		len(sample.BranchNames), bulletList(sample.BranchNames))
	fmt.Fprintf(&sb, "Tag name samples (%d):\n%s\n\n",
		len(sample.TagNames), bulletList(sample.TagNames))

	sb.WriteString(`Return a JSON object with the following fields:
{
  "commit_convention": "commit message convention and format, e.g. 'conventional-commits with scope: feat(scope): description' or 'conventional-commits without scope: feat: description', or null if there is no clear convention",
  "branch_naming_pattern": "branch naming pattern, e.g. 'feat-{ticket-id}' or 'feature/{name}', or null if there is no clear pattern",
  "tag_naming_convention": "tag naming convention, e.g. 'semantic-versioning (v1.0.0)' or 'date-based (2024-01-15)', or null if there is no clear convention"
}

Return JSON only, no other text.`)
	return sb.String()
}

// bulletList renders values as a markdown list, or a placeholder when empty.
func bulletList(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString("- ")
		sb.WriteString(v)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
