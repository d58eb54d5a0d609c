package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/artkessler/pulse/schema"
)

// writeJSONResultsForReport marshals the schema.WeeklySummary to JSON and writes it.
func writeJSONResultsForReport(w io.Writer, summary *schema.WeeklySummary) error {
	return writeJSON(w, summary)
}

// writeCSVResultsForReport writes the window aggregates as metric/value pairs.
func writeCSVResultsForReport(w *csv.Writer, summary *schema.WeeklySummary, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{"metric", "value"}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	optional := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmtFloat(*v)
	}
	rows := [][]string{
		{"avg_sleep_score", optional(summary.AvgSleepScore)},
		{"avg_readiness", optional(summary.AvgReadiness)},
		{"avg_efficiency", optional(summary.AvgEfficiency)},
		{"avg_duration", optional(summary.AvgDurationHours)},
		{"avg_stress", optional(summary.Stress.Avg)},
		{"best_day", summary.BestDay},
		{"worst_day", summary.WorstDay},
		{"days_tracked", fmtInt(summary.DaysTracked)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForComparison marshals the schema.PeriodComparison to JSON and writes it.
func writeJSONResultsForComparison(w io.Writer, comparison *schema.PeriodComparison) error {
	return writeJSON(w, comparison)
}

// writeCSVResultsForComparison writes the shared metrics of both windows to a CSV writer.
func writeCSVResultsForComparison(w *csv.Writer, comparison *schema.PeriodComparison, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{"metric", "current", "previous", "diff"}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	optional := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmtFloat(*v)
	}
	for _, m := range comparisonMetrics(comparison) {
		diff := ""
		if d, ok := comparison.Diff[m.key]; ok {
			diff = fmtFloat(d)
		}
		row := []string{m.key, optional(m.current), optional(m.previous), diff}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// comparisonMetric pairs a diff key with both windows' values for that metric.
type comparisonMetric struct {
	key      string
	name     string
	current  *float64
	previous *float64
}

// comparisonMetrics flattens a comparison into display order. Either window
// may be nil when its period had no records.
func comparisonMetrics(comparison *schema.PeriodComparison) []comparisonMetric {
	pick := func(s *schema.WeeklySummary, f func(*schema.WeeklySummary) *float64) *float64 {
		if s == nil {
			return nil
		}
		return f(s)
	}
	cur, prev := comparison.Current, comparison.Previous
	return []comparisonMetric{
		{
			key:      "avg_sleep_score",
			name:     "Avg Sleep Score",
			current:  pick(cur, func(s *schema.WeeklySummary) *float64 { return s.AvgSleepScore }),
			previous: pick(prev, func(s *schema.WeeklySummary) *float64 { return s.AvgSleepScore }),
		},
		{
			key:      "avg_readiness",
			name:     "Avg Readiness",
			current:  pick(cur, func(s *schema.WeeklySummary) *float64 { return s.AvgReadiness }),
			previous: pick(prev, func(s *schema.WeeklySummary) *float64 { return s.AvgReadiness }),
		},
		{
			key:      "avg_efficiency",
			name:     "Avg Efficiency",
			current:  pick(cur, func(s *schema.WeeklySummary) *float64 { return s.AvgEfficiency }),
			previous: pick(prev, func(s *schema.WeeklySummary) *float64 { return s.AvgEfficiency }),
		},
		{
			key:      "avg_duration",
			name:     "Avg Duration (h)",
			current:  pick(cur, func(s *schema.WeeklySummary) *float64 { return s.AvgDurationHours }),
			previous: pick(prev, func(s *schema.WeeklySummary) *float64 { return s.AvgDurationHours }),
		},
		{
			key:      "avg_stress",
			name:     "Avg Stress",
			current:  pick(cur, func(s *schema.WeeklySummary) *float64 { return s.Stress.Avg }),
			previous: pick(prev, func(s *schema.WeeklySummary) *float64 { return s.Stress.Avg }),
		},
	}
}

// fmtInt renders an int for CSV cells.
func fmtInt(v int) string {
	return strconv.Itoa(v)
}
