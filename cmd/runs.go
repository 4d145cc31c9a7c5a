package cmd

import (
	"fmt"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/internal/outwriter"
	"github.com/repolens/repolens/internal/runstore"
	"github.com/repolens/repolens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run store operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-tracking config values
	backend := schema.DatabaseBackend(viper.GetString("runs-backend"))
	connStr := viper.GetString("runs-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by status and export commands)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr

	// Initialize the store with the loaded config
	store, err := runstore.NewRunStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize run store: %w", err)
	}
	runStore = store

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("runs-backend"))
	connStr := viper.GetString("runs-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRunsDBFilePath()
	}

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for the migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// runsCmd focused on run tracking management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by inference commands. This avoids repo path
// resolution and refiner config processing for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage historical run tracking and exports",
	Long: `Manage historical inference run data used for trend tracking and reporting.

When enabled, RepoLens tracks every inference run, storing:
- Run metadata (timestamp, configuration, duration, refinement flag)
- Inferred workflow metrics per repository

This enables longitudinal analysis, trend detection, and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  list    - List recorded runs
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  repolens runs status

  # Export for analysis in pandas/DuckDB
  repolens runs export --output-file repolens-data`,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical run tracking.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last and oldest run timestamps
- Database table sizes

Examples:
  # Check run tracking status
  repolens runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run status", err)
		}
		if err := outwriter.NewOutWriter().WriteRunStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to print run status", err)
		}
	},
}

// runsListCmd lists recorded runs.
var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded inference runs",
	Long: `List every recorded inference run with its start time, duration and
whether convention findings were refined by an LLM.

Examples:
  # List all recorded runs
  repolens runs list

  # List runs as JSON
  repolens runs list --output json`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := runStore.GetAllRuns()
		if err != nil {
			contract.LogFatal("Failed to list runs", err)
		}
		if err := outwriter.NewOutWriter().WriteRuns(runs, cfg); err != nil {
			contract.LogFatal("Failed to print runs", err)
		}
	},
}

// runsClearCmd clears the run tracking data.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical run tracking data",
	Long: `Delete all stored runs and workflow metrics.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the run tracking tables

Examples:
  # Export before clearing
  repolens runs export --output-file backup
  repolens runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Release the store's connection before removing its backing storage
		closeRunStore()
		runStore = nil
		if err := runstore.ClearRuns(cfg.RunsBackend, contract.GetRunsDBFilePath(), cfg.RunsDBConnect); err != nil {
			contract.LogFatal("Failed to clear run data", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// runsExportCmd exports run data to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored run data to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - metadata about each inference run
- Workflow metrics - inferred conventions and cadence per repository

Requires: --output-file parameter

Examples:
  # Export all data
  repolens runs export --output-file repolens-data

  # Use with DuckDB for analysis
  repolens runs export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.runs.parquet') LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunsExport(runStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  repolens runs migrate

  # Migrate to specific version
  repolens runs migrate --target-version 1

  # Rollback to previous version
  repolens runs migrate --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.RunsBackend, cfg.RunsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
