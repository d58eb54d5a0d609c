package schema

// AlertThresholds holds the cutoffs below which a day raises an alert.
type AlertThresholds struct {
	Readiness  float64 `json:"readiness"`
	Efficiency float64 `json:"efficiency"`
	SleepHours float64 `json:"sleep_hours"`
}

// DefaultAlertThresholds returns the stock cutoffs.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		Readiness:  60,
		Efficiency: 80,
		SleepHours: 7,
	}
}

// DayAlerts holds the alerts raised for one day.
type DayAlerts struct {
	Day    string   `json:"day"`
	Alerts []string `json:"alerts"`
}
