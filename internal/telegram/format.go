package telegram

import (
	"fmt"
	"strings"

	"github.com/artkessler/pulse/schema"
)

// maxAlertDays caps how many alert days a chat message carries.
const maxAlertDays = 5

// FormatSleepDays renders per-day sleep rows as a Markdown message.
func FormatSleepDays(rows []schema.DayScoreRecord) string {
	if len(rows) == 0 {
		return "*Sleep*\nNo sleep records in the window."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Sleep (last %d days)*\n", len(rows))
	for _, r := range rows {
		fmt.Fprintf(&b, "`%s` score %s (eff %s%%, %sh)\n",
			r.Day,
			schema.FormatFloat(r.SleepScore),
			schema.FormatFloat(r.Efficiency),
			schema.FormatFloat(r.DurationHours))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatReadinessDays renders per-day readiness rows as a Markdown message.
func FormatReadinessDays(rows []schema.DayScoreRecord) string {
	if len(rows) == 0 {
		return "*Readiness*\nNo readiness records in the window."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Readiness (last %d days)*\n", len(rows))
	for _, r := range rows {
		fmt.Fprintf(&b, "`%s` score %s\n", r.Day, schema.FormatFloat(r.ReadinessScore))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWeeklySummary renders the weekly report as a Markdown message.
func FormatWeeklySummary(summary *schema.WeeklySummary) string {
	if summary == nil {
		return "*Weekly Report*\nNo records in the window."
	}

	var b strings.Builder
	b.WriteString("*Weekly Report*\n")
	writeOptLine(&b, "Avg sleep score", summary.AvgSleepScore, "")
	writeOptLine(&b, "Avg readiness", summary.AvgReadiness, "")
	writeOptLine(&b, "Avg efficiency", summary.AvgEfficiency, "%")
	writeOptLine(&b, "Avg duration", summary.AvgDurationHours, "h")
	writeOptLine(&b, "Avg stress", summary.Stress.Avg, "")
	if summary.BestDay != "" {
		fmt.Fprintf(&b, "Best day: `%s`\n", summary.BestDay)
	}
	if summary.WorstDay != "" {
		fmt.Fprintf(&b, "Worst day: `%s`\n", summary.WorstDay)
	}
	fmt.Fprintf(&b, "_Tracked %d days_", summary.DaysTracked)
	return b.String()
}

// FormatStressSummary renders the weekly stress summary as a Markdown message.
func FormatStressSummary(summary *schema.WeeklyStressSummary) string {
	var b strings.Builder
	b.WriteString("*Stress Summary*\n")
	if summary.Avg == nil {
		b.WriteString("No stress signal in the window.")
		return b.String()
	}

	fmt.Fprintf(&b, "Avg: %s (%s)\n", schema.FormatFloat(*summary.Avg), summary.Status)
	if summary.Trend != nil {
		fmt.Fprintf(&b, "Trend: %s (%s)\n", schema.FormatFloat(*summary.Trend), summary.TrendDirection)
	}
	if summary.BestDay != "" {
		fmt.Fprintf(&b, "Best day: `%s`\n", summary.BestDay)
	}
	if summary.WorstDay != "" {
		fmt.Fprintf(&b, "Worst day: `%s`\n", summary.WorstDay)
	}
	fmt.Fprintf(&b, "_Tracked %d days (%d direct, %d derived)_",
		summary.DaysTracked, summary.DirectDays, summary.DerivedDays)
	return b.String()
}

// FormatAlerts renders threshold alerts as a Markdown message. Only the last
// maxAlertDays days are listed so the message stays chat-sized.
func FormatAlerts(alerts []schema.DayAlerts) string {
	if len(alerts) == 0 {
		return "*Alerts*\n✅ All days within thresholds."
	}

	shown := alerts
	if len(shown) > maxAlertDays {
		shown = shown[len(shown)-maxAlertDays:]
	}

	var b strings.Builder
	b.WriteString("*Alerts*\n")
	for _, a := range shown {
		fmt.Fprintf(&b, "`%s` %s\n", a.Day, strings.Join(a.Alerts, "; "))
	}
	fmt.Fprintf(&b, "_Total: %d alert days_", len(alerts))
	return b.String()
}

// writeOptLine appends a "Label: value" line, skipping nil metrics.
func writeOptLine(b *strings.Builder, label string, v *float64, unit string) {
	if v == nil {
		return
	}
	fmt.Fprintf(b, "%s: %s%s\n", label, schema.FormatFloat(*v), unit)
}
