// Package cmd defines the command-line interface for repolens.
package cmd

import (
	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("max-commits", "n", contract.DefaultMaxCommits, "Maximum number of commits to sample from git history")
	rootCmd.PersistentFlags().String("output", string(schema.YAMLOut), "Output format: text or json or yaml")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("refine", "no", "Refine convention findings with an LLM (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("llm-model", contract.DefaultLLMModel, "Model name for the LLM refiner")
	rootCmd.PersistentFlags().String("llm-api-key", "", "API key for the LLM refiner (falls back to OPENAI_API_KEY)")
	rootCmd.PersistentFlags().String("llm-base-url", contract.DefaultLLMBaseURL, "Base URL of an OpenAI-compatible endpoint")
	rootCmd.PersistentFlags().String("runs-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
