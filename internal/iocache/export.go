package iocache

import (
	"errors"
	"fmt"

	"github.com/artkessler/pulse/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of history data to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no history data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total report runs: %d\n", status.TotalRuns)
	fmt.Printf("Total day score rows: %d\n", status.TableSizes["pulse_day_scores"])

	// Retrieve all report runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}

	// Retrieve all day scores
	dayScores, err := store.GetAllDayScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve day scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertReportRunRecords(runs)
	parquetDayScores := parquet.ConvertDayScoreRecords(dayScores)

	// Write report runs to Parquet
	runsFile := outputFile + ".report_runs.parquet"
	if err := parquet.WriteReportRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write report runs: %w", err)
	}
	fmt.Printf("Exported %d report runs to: %s\n", len(parquetRuns), runsFile)

	// Write day scores to Parquet
	dayScoresFile := outputFile + ".day_scores.parquet"
	if err := parquet.WriteDayScoresParquet(parquetDayScores, dayScoresFile); err != nil {
		return fmt.Errorf("failed to write day scores: %w", err)
	}
	fmt.Printf("Exported %d day score rows to: %s\n", len(parquetDayScores), dayScoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
