package core

import (
	"fmt"

	"github.com/artkessler/pulse/schema"
)

// CheckThresholds scans a window for days whose recovery metrics fall below
// the configured cutoffs. Days with nothing to flag are omitted. A day with
// no readiness record never alerts on readiness, since readiness often lands
// hours after the sleep record.
func CheckThresholds(sleepData, readinessData []schema.Record, thresholds schema.AlertThresholds) []schema.DayAlerts {
	readinessByDay := indexByDay(readinessData)

	var out []schema.DayAlerts
	for _, sleep := range sleepData {
		day := sleep.Day()
		if day == "" {
			continue
		}

		var alerts []string
		if r := readinessByDay[day]; r != nil {
			if score, ok := r.Float("score"); ok && score < thresholds.Readiness {
				alerts = append(alerts, fmt.Sprintf("Readiness %s", schema.FormatFloat(score)))
			}
		}

		// Missing efficiency reads as fine rather than as a zero-efficiency night.
		eff := 100.0
		if v, ok := sleep.Float("efficiency"); ok {
			eff = v
		}
		if eff < thresholds.Efficiency {
			alerts = append(alerts, fmt.Sprintf("Efficiency %s%%", schema.FormatFloat(eff)))
		}

		if sec, ok := sleep.Float("total_sleep_duration"); ok {
			if hours := HoursFromSeconds(sec); hours < thresholds.SleepHours {
				alerts = append(alerts, fmt.Sprintf("Sleep %sh", schema.FormatFloat(hours)))
			}
		}

		if len(alerts) > 0 {
			out = append(out, schema.DayAlerts{Day: day, Alerts: alerts})
		}
	}
	return out
}
