package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/artkessler/pulse/schema"
)

// writeJSONResultsForActivity writes activity rows in JSON format.
func writeJSONResultsForActivity(w io.Writer, rows []schema.ActivityDay) error {
	return writeJSON(w, rows)
}

// writeCSVResultsForActivity writes activity rows in CSV format.
func writeCSVResultsForActivity(w *csv.Writer, rows []schema.ActivityDay, fmtFloat func(float64) string) error {
	header := []string{"day", "score", "steps", "active_calories", "total_calories"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Day,
			formatOptFloat(fmtFloat, r.Score),
			formatOptFloat(fmtFloat, r.Steps),
			formatOptFloat(fmtFloat, r.ActiveCalories),
			formatOptFloat(fmtFloat, r.TotalCalories),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
