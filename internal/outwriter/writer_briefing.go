package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/artkessler/pulse/schema"
)

// writeJSONResultsForBriefing marshals the schema.Briefing to JSON and writes it.
func writeJSONResultsForBriefing(w io.Writer, briefing *schema.Briefing) error {
	return writeJSON(w, briefing)
}

// writeCSVResultsForBriefing writes the briefing metrics to a CSV writer.
func writeCSVResultsForBriefing(w *csv.Writer, briefing *schema.Briefing, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{"day", "metric", "value", "baseline", "delta"}
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
	for _, m := range briefingMetrics(briefing) {
		delta := ""
		if d, ok := briefing.Deltas[m.key]; ok {
			delta = fmtFloat(d)
		}
		row := []string{briefing.Day, m.key, optional(m.value), optional(m.baseline), delta}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// briefingMetric pairs a delta key with the target value and its baseline.
type briefingMetric struct {
	key      string
	name     string
	value    *float64
	baseline *float64
}

// briefingMetrics flattens a briefing into display order. Readiness and
// efficiency have no baseline counterpart, so their baselines stay nil.
func briefingMetrics(briefing *schema.Briefing) []briefingMetric {
	base := briefing.Baseline
	pick := func(f func(*schema.BriefingBaseline) *float64) *float64 {
		if base == nil {
			return nil
		}
		return f(base)
	}
	return []briefingMetric{
		{
			key:      "sleep_score",
			name:     "Sleep Score",
			value:    briefing.SleepScore,
			baseline: pick(func(b *schema.BriefingBaseline) *float64 { return b.SleepScore }),
		},
		{
			key:   "readiness_score",
			name:  "Readiness",
			value: briefing.ReadinessScore,
		},
		{
			key:      "duration_hours",
			name:     "Duration (h)",
			value:    briefing.DurationHours,
			baseline: pick(func(b *schema.BriefingBaseline) *float64 { return b.DurationHours }),
		},
		{
			key:      "avg_hrv",
			name:     "Avg HRV",
			value:    briefing.AvgHRV,
			baseline: pick(func(b *schema.BriefingBaseline) *float64 { return b.AvgHRV }),
		},
		{
			key:      "resting_hr",
			name:     "Resting HR",
			value:    briefing.RestingHR,
			baseline: pick(func(b *schema.BriefingBaseline) *float64 { return b.RestingHR }),
		},
		{
			key:   "efficiency",
			name:  "Efficiency",
			value: briefing.Efficiency,
		},
	}
}
