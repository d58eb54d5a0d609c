package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStressResults outputs the weekly stress summary, dispatching based on
// the output format configured.
func PrintStressResults(summary *schema.WeeklyStressSummary, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForStress(summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForStress(summary, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for day-level records")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStressTable(w, summary, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForStress handles opening the file and calling the JSON writer.
func printJSONResultsForStress(summary *schema.WeeklyStressSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForStress(w, summary)
	}, "Wrote JSON stress summary")
}

// printCSVResultsForStress handles opening the file and calling the CSV writer.
func printCSVResultsForStress(summary *schema.WeeklyStressSummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForStress(csvWriter, summary, fmtFloat)
	}, "Wrote CSV stress summary")
}

// writeStressTable prints per-day stress rows followed by the window aggregate.
func writeStressTable(w io.Writer, summary *schema.WeeklyStressSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Day", "Score", "Status", "Source", "Components"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	noteWidth := GetMaxTableNoteWidth(cfg)
	var data [][]string
	for _, d := range summary.Days {
		components := strings.Join(d.Components, ",")
		if components == "" {
			components = "n/a"
		}
		row := []string{
			d.Day,
			formatOptFloat(fmtFloat, d.Score),
			stressLabel(cfg, d.Status),
			string(d.Source),
			truncateText(components, noteWidth),
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

	// 5. Window aggregate
	if _, err := fmt.Fprintf(w, "Weekly avg: %s (%s). Trend: %s (%s). Best day: %s, worst day: %s\n",
		formatOptFloat(fmtFloat, summary.Avg),
		stressLabel(cfg, summary.Status),
		formatOptFloat(fmtFloat, summary.Trend),
		summary.TrendDirection,
		orNone(summary.BestDay),
		orNone(summary.WorstDay),
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Tracked %d days (%d direct, %d derived). Completed in %v. Cache backend: %s\n",
		summary.DaysTracked, summary.DirectDays, summary.DerivedDays, duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// orNone substitutes a placeholder for an empty day string.
func orNone(day string) string {
	if day == "" {
		return "n/a"
	}
	return day
}
