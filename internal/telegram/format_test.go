package telegram

import (
	"fmt"
	"strings"
	"testing"

	"github.com/artkessler/pulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormatSleepDays(t *testing.T) {
	rows := []schema.DayScoreRecord{
		{Day: "2026-01-15", SleepScore: 82.5, Efficiency: 91, DurationHours: 7.4},
		{Day: "2026-01-16", SleepScore: 74, Efficiency: 85, DurationHours: 6.8},
	}

	msg := FormatSleepDays(rows)
	assert.Contains(t, msg, "*Sleep (last 2 days)*")
	assert.Contains(t, msg, "`2026-01-15` score 82.5 (eff 91%, 7.4h)")
	assert.Contains(t, msg, "`2026-01-16` score 74 (eff 85%, 6.8h)")
}

func TestFormatSleepDaysEmpty(t *testing.T) {
	msg := FormatSleepDays(nil)
	assert.Contains(t, msg, "No sleep records")
}

func TestFormatReadinessDays(t *testing.T) {
	rows := []schema.DayScoreRecord{
		{Day: "2026-01-15", ReadinessScore: 78},
	}

	msg := FormatReadinessDays(rows)
	assert.Contains(t, msg, "*Readiness (last 1 days)*")
	assert.Contains(t, msg, "`2026-01-15` score 78")
}

func TestFormatWeeklySummary(t *testing.T) {
	summary := &schema.WeeklySummary{
		AvgSleepScore:    schema.FloatPtr(78.3),
		AvgEfficiency:    schema.FloatPtr(88),
		AvgDurationHours: schema.FloatPtr(7.1),
		BestDay:          "2026-01-15",
		WorstDay:         "2026-01-16",
		DaysTracked:      7,
		Stress:           schema.WeeklyStressSummary{Avg: schema.FloatPtr(48.4)},
	}

	msg := FormatWeeklySummary(summary)
	assert.Contains(t, msg, "*Weekly Report*")
	assert.Contains(t, msg, "Avg sleep score: 78.3")
	assert.Contains(t, msg, "Avg efficiency: 88%")
	assert.Contains(t, msg, "Avg duration: 7.1h")
	assert.Contains(t, msg, "Avg stress: 48.4")
	assert.Contains(t, msg, "Best day: `2026-01-15`")
	assert.Contains(t, msg, "_Tracked 7 days_")
	// Readiness was absent from the window, so no line for it
	assert.NotContains(t, msg, "Avg readiness")
}

func TestFormatWeeklySummaryNil(t *testing.T) {
	msg := FormatWeeklySummary(nil)
	assert.Contains(t, msg, "No records in the window")
}

func TestFormatStressSummary(t *testing.T) {
	summary := &schema.WeeklyStressSummary{
		Avg:            schema.FloatPtr(48.4),
		Status:         schema.ModerateStress,
		BestDay:        "2026-01-15",
		WorstDay:       "2026-01-16",
		Trend:          schema.FloatPtr(13.8),
		TrendDirection: schema.TrendUp,
		DaysTracked:    7,
		DirectDays:     4,
		DerivedDays:    3,
	}

	msg := FormatStressSummary(summary)
	assert.Contains(t, msg, "*Stress Summary*")
	assert.Contains(t, msg, "Avg: 48.4 (MODERATE)")
	assert.Contains(t, msg, "Trend: 13.8 (up)")
	assert.Contains(t, msg, "_Tracked 7 days (4 direct, 3 derived)_")
}

func TestFormatStressSummaryNoSignal(t *testing.T) {
	msg := FormatStressSummary(&schema.WeeklyStressSummary{Status: schema.UnknownStress})
	assert.Contains(t, msg, "No stress signal")
}

func TestFormatAlerts(t *testing.T) {
	alerts := []schema.DayAlerts{
		{Day: "2026-01-15", Alerts: []string{"Readiness 55 below threshold 60"}},
		{Day: "2026-01-16", Alerts: []string{"Sleep 6.2h below threshold 7h"}},
	}

	msg := FormatAlerts(alerts)
	assert.Contains(t, msg, "*Alerts*")
	assert.Contains(t, msg, "`2026-01-15` Readiness 55 below threshold 60")
	assert.Contains(t, msg, "_Total: 2 alert days_")
}

func TestFormatAlertsCapped(t *testing.T) {
	var alerts []schema.DayAlerts
	for i := 10; i < 18; i++ {
		alerts = append(alerts, schema.DayAlerts{
			Day:    fmt.Sprintf("2026-01-%d", i),
			Alerts: []string{"Readiness 55 below threshold 60"},
		})
	}

	msg := FormatAlerts(alerts)
	// Only the last five days make the message
	assert.NotContains(t, msg, "2026-01-12")
	assert.Contains(t, msg, "2026-01-13")
	assert.Contains(t, msg, "2026-01-17")
	assert.Contains(t, msg, "_Total: 8 alert days_")
	assert.Equal(t, 5, strings.Count(msg, "`2026-01-"))
}

func TestFormatAlertsEmpty(t *testing.T) {
	msg := FormatAlerts(nil)
	assert.Contains(t, msg, "All days within thresholds")
}
