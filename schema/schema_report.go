package schema

// WeeklySummary aggregates sleep, readiness and stress over a report window.
// Averages are nil when no record in the window carried the metric.
type WeeklySummary struct {
	AvgSleepScore    *float64            `json:"avg_sleep_score"`
	AvgReadiness     *float64            `json:"avg_readiness"`
	AvgEfficiency    *float64            `json:"avg_efficiency"`
	AvgDurationHours *float64            `json:"avg_duration"`
	BestDay          string              `json:"best_day,omitempty"`
	WorstDay         string              `json:"worst_day,omitempty"`
	DaysTracked      int                 `json:"days_tracked"`
	Stress           WeeklyStressSummary `json:"stress_summary"`
}

// PeriodComparison holds two adjacent report windows and their per-metric
// deltas (current minus previous, rounded to 2 decimals). A metric missing
// from either window is absent from Diff.
type PeriodComparison struct {
	Current  *WeeklySummary     `json:"current"`
	Previous *WeeklySummary     `json:"previous"`
	Diff     map[string]float64 `json:"diff"`
}
