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

// PrintWeeklyReportResults outputs the weekly report summary, dispatching
// based on the output format configured.
func PrintWeeklyReportResults(summary *schema.WeeklySummary, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForReport(summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForReport(summary, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for day-level records")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeeklyReportTable(w, summary, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForReport handles opening the file and calling the JSON writer.
func printJSONResultsForReport(summary *schema.WeeklySummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForReport(w, summary)
	}, "Wrote JSON report")
}

// printCSVResultsForReport handles opening the file and calling the CSV writer.
func printCSVResultsForReport(summary *schema.WeeklySummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForReport(csvWriter, summary, fmtFloat)
	}, "Wrote CSV report")
}

// writeWeeklyReportTable prints the window aggregates in a metric/value table.
func writeWeeklyReportTable(w io.Writer, summary *schema.WeeklySummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Metric", "Value", "Label"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	sleepLabel := ""
	if summary.AvgSleepScore != nil {
		sleepLabel = scoreLabel(cfg, *summary.AvgSleepScore)
	}
	readinessLabel := ""
	if summary.AvgReadiness != nil {
		readinessLabel = scoreLabel(cfg, *summary.AvgReadiness)
	}
	data := [][]string{
		{"Avg Sleep Score", formatOptFloat(fmtFloat, summary.AvgSleepScore), sleepLabel},
		{"Avg Readiness", formatOptFloat(fmtFloat, summary.AvgReadiness), readinessLabel},
		{"Avg Efficiency", formatOptFloat(fmtFloat, summary.AvgEfficiency), ""},
		{"Avg Duration (h)", formatOptFloat(fmtFloat, summary.AvgDurationHours), ""},
		{"Avg Stress", formatOptFloat(fmtFloat, summary.Stress.Avg), stressLabel(cfg, summary.Stress.Status)},
		{"Best Day", orNone(summary.BestDay), ""},
		{"Worst Day", orNone(summary.WorstDay), ""},
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Tracked %d days. Completed in %v. Cache backend: %s\n",
		summary.DaysTracked, duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// PrintComparisonResults outputs the period comparison, dispatching based on
// the output format configured.
func PrintComparisonResults(comparison *schema.PeriodComparison, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForComparison(comparison, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForComparison(comparison, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for day-level records")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, comparison, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForComparison handles opening the file and calling the JSON writer.
func printJSONResultsForComparison(comparison *schema.PeriodComparison, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForComparison(w, comparison)
	}, "Wrote JSON comparison")
}

// printCSVResultsForComparison handles opening the file and calling the CSV writer.
func printCSVResultsForComparison(comparison *schema.PeriodComparison, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForComparison(csvWriter, comparison, fmtFloat)
	}, "Wrote CSV comparison")
}

// writeComparisonTable prints the shared metrics of both windows side by side.
func writeComparisonTable(w io.Writer, comparison *schema.PeriodComparison, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Metric", "Current", "Previous", "Diff"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	var data [][]string
	for _, m := range comparisonMetrics(comparison) {
		diff := "n/a"
		if d, ok := comparison.Diff[m.key]; ok {
			diff = fmtFloat(d)
			if d >= 0 {
				diff = "+" + diff
			}
		}
		row := []string{
			m.name,
			formatOptFloat(fmtFloat, m.current),
			formatOptFloat(fmtFloat, m.previous),
			diff,
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

	if _, err := fmt.Fprintf(w, "Comparison completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
