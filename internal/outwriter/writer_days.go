package outwriter

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/artkessler/pulse/schema"
)

// writeJSONResultsForDays marshals the day rows to JSON and writes them.
func writeJSONResultsForDays(w io.Writer, rows []schema.DayScoreRecord) error {
	return writeJSON(w, rows)
}

// writeCSVResultsForDays writes the day rows to a CSV writer.
func writeCSVResultsForDays(w *csv.Writer, rows []schema.DayScoreRecord, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"day",
		"sleep_score",
		"readiness_score",
		"stress_score",
		"stress_source",
		"efficiency",
		"duration_hours",
		"avg_hrv",
		"resting_hr",
		"recorded_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, r := range rows {
		row := []string{
			r.Day,
			fmtFloat(r.SleepScore),
			fmtFloat(r.ReadinessScore),
			fmtFloat(r.StressScore),
			r.StressSource,
			fmtFloat(r.Efficiency),
			fmtFloat(r.DurationHours),
			fmtFloat(r.AvgHRV),
			fmtFloat(r.RestingHR),
			r.RecordedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
