package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/parquet"
	"github.com/artkessler/pulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintDayScoreResults outputs per-day score rows, dispatching based on the
// output format configured.
func PrintDayScoreResults(rows []schema.DayScoreRecord, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForDays(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForDays(rows, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("parquet output requires --output-file")
		}
		if err := parquet.WriteDayScoresParquet(parquet.ConvertDayScoreRecords(rows), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDayScoreTable(w, rows, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForDays handles opening the file and calling the JSON writer.
func printJSONResultsForDays(rows []schema.DayScoreRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForDays(w, rows)
	}, "Wrote JSON day scores")
}

// printCSVResultsForDays handles opening the file and calling the CSV writer.
func printCSVResultsForDays(rows []schema.DayScoreRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForDays(csvWriter, rows, fmtFloat)
	}, "Wrote CSV day scores")
}

// writeDayScoreTable prints one row per day in a human-readable table.
func writeDayScoreTable(w io.Writer, rows []schema.DayScoreRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Day", "Sleep", "Label", "Readiness", "Stress", "Source", "Eff%", "Hours", "HRV", "RHR"}
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
			fmtFloat(r.SleepScore),
			scoreLabel(cfg, r.SleepScore),
			fmtFloat(r.ReadinessScore),
			fmtFloat(r.StressScore),
			r.StressSource,
			fmtFloat(r.Efficiency),
			fmtFloat(r.DurationHours),
			fmtFloat(r.AvgHRV),
			fmtFloat(r.RestingHR),
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
