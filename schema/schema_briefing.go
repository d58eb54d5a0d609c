package schema

// Briefing is a single-morning snapshot for a target date.
// Pointer fields are nil when the night record did not carry the metric.
type Briefing struct {
	Day            string             `json:"day"`
	SleepScore     *float64           `json:"sleep_score"`
	ReadinessScore *float64           `json:"readiness_score"`
	DurationHours  *float64           `json:"duration_hours"`
	AvgHRV         *float64           `json:"avg_hrv"`
	RestingHR      *float64           `json:"resting_hr"`
	Efficiency     *float64           `json:"efficiency"`
	Baseline       *BriefingBaseline  `json:"baseline,omitempty"`
	Deltas         map[string]float64 `json:"deltas,omitempty"`
}

// BriefingBaseline averages the same metrics over a trailing window,
// excluding the target date itself.
type BriefingBaseline struct {
	SleepScore    *float64 `json:"sleep_score"`
	DurationHours *float64 `json:"duration_hours"`
	AvgHRV        *float64 `json:"avg_hrv"`
	RestingHR     *float64 `json:"resting_hr"`
	Days          int      `json:"days"`
}
