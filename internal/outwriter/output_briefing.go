package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintBriefingResults outputs the morning briefing, dispatching based on the
// output format configured.
func PrintBriefingResults(briefing *schema.Briefing, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForBriefing(briefing, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForBriefing(briefing, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is only supported for day-level records")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBriefingTable(w, briefing, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// printJSONResultsForBriefing handles opening the file and calling the JSON writer.
func printJSONResultsForBriefing(briefing *schema.Briefing, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForBriefing(w, briefing)
	}, "Wrote JSON briefing")
}

// printCSVResultsForBriefing handles opening the file and calling the CSV writer.
func printCSVResultsForBriefing(briefing *schema.Briefing, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForBriefing(csvWriter, briefing, fmtFloat)
	}, "Wrote CSV briefing")
}

// writeBriefingTable prints briefing metrics against their trailing baseline.
func writeBriefingTable(w io.Writer, briefing *schema.Briefing, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Metric", "Value", "Baseline", "Delta"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	var data [][]string
	for _, m := range briefingMetrics(briefing) {
		delta := "n/a"
		if d, ok := briefing.Deltas[m.key]; ok {
			delta = fmtFloat(d)
			if d >= 0 {
				delta = "+" + delta
			}
		}
		row := []string{
			m.name,
			formatOptFloat(fmtFloat, m.value),
			formatOptFloat(fmtFloat, m.baseline),
			delta,
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

	baselineDays := 0
	if briefing.Baseline != nil {
		baselineDays = briefing.Baseline.Days
	}
	if _, err := fmt.Fprintf(w, "Briefing for %s (baseline over %d days)\n", briefing.Day, baselineDays); err != nil {
		return err
	}
	return nil
}
