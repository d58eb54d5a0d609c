package outwriter

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/artkessler/pulse/schema"
)

// writeJSONResultsForStress marshals the schema.WeeklyStressSummary to JSON and writes it.
func writeJSONResultsForStress(w io.Writer, summary *schema.WeeklyStressSummary) error {
	return writeJSON(w, summary)
}

// writeCSVResultsForStress writes the per-day stress rows to a CSV writer.
func writeCSVResultsForStress(w *csv.Writer, summary *schema.WeeklyStressSummary, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"day",
		"score",
		"status",
		"source",
		"derived",
		"components",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, d := range summary.Days {
		score := ""
		if d.Score != nil {
			score = fmtFloat(*d.Score)
		}
		derived := "false"
		if d.Derived {
			derived = "true"
		}
		row := []string{
			d.Day,
			score,
			string(d.Status),
			string(d.Source),
			derived,
			strings.Join(d.Components, "|"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
