package schema

// ActivityDay is one day of activity metrics extracted from a daily record.
// Fields are pointers because the provider omits metrics it has not synced.
type ActivityDay struct {
	Day            string   `json:"day"`
	Score          *float64 `json:"score,omitempty"`
	Steps          *float64 `json:"steps,omitempty"`
	ActiveCalories *float64 `json:"active_calories,omitempty"`
	TotalCalories  *float64 `json:"total_calories,omitempty"`
}
