package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintActivityResults outputs per-day activity rows, dispatching based on
// the output format configured.
func PrintActivityResults(rows []schema.ActivityDay, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForActivity(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForActivity(rows, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for activity records")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeActivityTable(w, rows, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForActivity handles opening the file and calling the JSON writer.
func printJSONResultsForActivity(rows []schema.ActivityDay, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForActivity(w, rows)
	}, "Wrote JSON activity days")
}

// printCSVResultsForActivity handles opening the file and calling the CSV writer.
func printCSVResultsForActivity(rows []schema.ActivityDay, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForActivity(csvWriter, rows, fmtFloat)
	}, "Wrote CSV activity days")
}

// writeActivityTable prints one row per day in a human-readable table.
func writeActivityTable(w io.Writer, rows []schema.ActivityDay, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Day", "Score", "Steps", "Active Cal", "Total Cal"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	var data [][]string
	for _, r := range rows {
		row := []string{
			r.Day,
			formatOptFloat(fmtFloat, r.Score),
			formatOptFloat(fmtFloat, r.Steps),
			formatOptFloat(fmtFloat, r.ActiveCalories),
			formatOptFloat(fmtFloat, r.TotalCalories),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d days. Completed in %v. Cache backend: %s\n", len(rows), duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
