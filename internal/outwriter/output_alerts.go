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

// PrintAlertResults outputs threshold alerts, dispatching based on the
// output format configured.
func PrintAlertResults(alerts []schema.DayAlerts, thresholds schema.AlertThresholds, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForAlerts(alerts, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForAlerts(alerts, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for day-level records")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAlertTable(w, alerts, thresholds, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForAlerts handles opening the file and calling the JSON writer.
func printJSONResultsForAlerts(alerts []schema.DayAlerts, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForAlerts(w, alerts)
	}, "Wrote JSON alerts")
}

// printCSVResultsForAlerts handles opening the file and calling the CSV writer.
func printCSVResultsForAlerts(alerts []schema.DayAlerts, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForAlerts(csvWriter, alerts)
	}, "Wrote CSV alerts")
}

// writeAlertTable prints one row per flagged day.
func writeAlertTable(w io.Writer, alerts []schema.DayAlerts, thresholds schema.AlertThresholds, cfg *contract.Config, duration time.Duration) error {
	if len(alerts) == 0 {
		_, err := fmt.Fprintf(w, "✅ No alerts. All days within thresholds (readiness >= %s, efficiency >= %s%%, sleep >= %sh)\n",
			schema.FormatFloat(thresholds.Readiness),
			schema.FormatFloat(thresholds.Efficiency),
			schema.FormatFloat(thresholds.SleepHours))
		return err
	}

	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Day", "Alerts"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	noteWidth := GetMaxTableNoteWidth(cfg)
	var data [][]string
	for _, a := range alerts {
		row := []string{
			a.Day,
			truncateText(strings.Join(a.Alerts, "; "), noteWidth),
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

	if _, err := fmt.Fprintf(w, "%d alert days. Thresholds: readiness < %s, efficiency < %s%%, sleep < %sh. Completed in %v\n",
		len(alerts),
		schema.FormatFloat(thresholds.Readiness),
		schema.FormatFloat(thresholds.Efficiency),
		schema.FormatFloat(thresholds.SleepHours),
		duration); err != nil {
		return err
	}
	return nil
}
