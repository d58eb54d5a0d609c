package schema

// StressDay represents the normalized stress outcome for a single day.
type StressDay struct {
	Day        string       `json:"day"`
	Score      *float64     `json:"score"`
	Status     StressStatus `json:"status"`
	Source     ScoreSource  `json:"source"`
	Derived    bool         `json:"derived"`
	Components []string     `json:"components"`
	Label      string       `json:"label"`
}

// WeeklyStressSummary aggregates normalized stress days over a window.
// Avg and Trend are nil when no day in the window produced a score.
type WeeklyStressSummary struct {
	Avg            *float64       `json:"avg"`
	Status         StressStatus   `json:"status"`
	BestDay        string         `json:"best_day,omitempty"`
	WorstDay       string         `json:"worst_day,omitempty"`
	Trend          *float64       `json:"trend"`
	TrendDirection TrendDirection `json:"trend_direction"`
	DaysTracked    int            `json:"days_tracked"`
	DerivedDays    int            `json:"derived_days"`
	DirectDays     int            `json:"direct_days"`
	Days           []StressDay    `json:"days"`
}
