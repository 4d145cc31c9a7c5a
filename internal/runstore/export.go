package runstore

import (
	"errors"
	"fmt"

	"github.com/repolens/repolens/internal/contract"
	"github.com/repolens/repolens/internal/parquet"
)

// ExecuteRunsExport exports all run tracking data to Parquet files.
func ExecuteRunsExport(store contract.RunStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total workflow metric records: %d\n", status.TableSizes[workflowMetricsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all workflow metrics
	metrics, err := store.GetAllWorkflowMetrics()
	if err != nil {
		return fmt.Errorf("failed to retrieve workflow metrics: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetMetrics := parquet.ConvertWorkflowMetricsRecords(metrics)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteInferenceRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write workflow metrics to Parquet
	metricsFile := outputFile + ".workflow_metrics.parquet"
	if err := parquet.WriteWorkflowMetricsParquet(parquetMetrics, metricsFile); err != nil {
		return fmt.Errorf("failed to write workflow metrics: %w", err)
	}
	fmt.Printf("Exported %d workflow metric records to: %s\n", len(parquetMetrics), metricsFile)

	return nil
}
