package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/repolens/repolens/schema"
)

// Default values for configuration.
const (
	DefaultMaxCommits = 400
	MaxCommitsLimit   = 100000

	DefaultLLMModel   = "gpt-3.5-turbo"
	DefaultLLMBaseURL = "https://api.openai.com/v1"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for inference.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath   string
	MaxCommits int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	Refine     bool // Use the LLM refiner when an API key is available
	LLMModel   string
	LLMAPIKey  string
	LLMBaseURL string // Please use env var as this may carry credentials in query params

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored values in table output
}

// Clone returns a shallow copy of the config so callers can override fields
// per request without mutating the shared base config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	MaxCommits    int    `mapstructure:"max-commits"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Width         int    `mapstructure:"width"`
	Refine        string `mapstructure:"refine"`
	LLMModel      string `mapstructure:"llm-model"`
	LLMAPIKey     string `mapstructure:"llm-api-key"`
	LLMBaseURL    string `mapstructure:"llm-base-url"`
	RunsBackend   string `mapstructure:"runs-backend"`
	RunsDBConnect string `mapstructure:"runs-db-connect"`
	Emoji         string `mapstructure:"emoji"`
	Color         string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. The repo path is resolved to an
// absolute path but is not required to be a Git repository: the engine
// reports an empty record for non-repositories instead of failing here.
func ProcessAndValidate(_ context.Context, cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processRefinerInputs(cfg, input); err != nil {
		return err
	}
	return resolveRepoPath(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. MaxCommits Validation ---
	if input.MaxCommits <= 0 || input.MaxCommits > MaxCommitsLimit {
		return fmt.Errorf("max-commits must be greater than 0 and cannot exceed %d (received %d)", MaxCommitsLimit, input.MaxCommits)
	}
	cfg.MaxCommits = input.MaxCommits

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, yaml", input.Output)
	}

	// --- 3. Runs Backend Validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if _, ok := schema.ValidRunBackends[cfg.RunsBackend]; !ok {
		return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	cfg.RunsDBConnect = input.RunsDBConnect
	return ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect)
}

// processRefinerInputs validates the LLM refiner settings. A missing API key is
// not an error: the engine silently keeps its rule-based findings.
func processRefinerInputs(cfg *Config, input *ConfigRawInput) error {
	refine, err := ParseBoolString(input.Refine)
	if err != nil {
		return fmt.Errorf("invalid --refine value: %w", err)
	}
	cfg.Refine = refine

	cfg.LLMModel = strings.TrimSpace(input.LLMModel)
	if cfg.LLMModel == "" {
		cfg.LLMModel = DefaultLLMModel
	}

	cfg.LLMAPIKey = strings.TrimSpace(input.LLMAPIKey)
	if cfg.LLMAPIKey == "" {
		// Fall back to the conventional variables used by OpenAI-compatible tools
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	cfg.LLMBaseURL = strings.TrimRight(strings.TrimSpace(input.LLMBaseURL), "/")
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = DefaultLLMBaseURL
	}
	return nil
}

// resolveRepoPath resolves the repository path to a clean absolute path.
func resolveRepoPath(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = filepath.Clean(absSearchPath)
	return nil
}
