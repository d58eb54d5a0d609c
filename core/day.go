package core

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/artkessler/pulse/schema"
)

// timestampLayouts are the shapes providers have been seen shipping.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// CanonicalDay maps a provider timestamp onto the calendar day in the user's
// timezone. Unparseable timestamps fall back to their date prefix so a bad
// record degrades instead of vanishing.
func CanonicalDay(timestamp string, loc *time.Location) string {
	// A bare date is already a calendar day, not an instant to localize.
	if len(timestamp) == 10 {
		if _, err := time.Parse("2006-01-02", timestamp); err == nil {
			return timestamp
		}
	}

	ts, err := parseTimestamp(timestamp)
	if err != nil {
		if len(timestamp) >= 10 {
			return timestamp[:10]
		}
		return ""
	}
	return ts.In(loc).Format("2006-01-02")
}

// FormatLocalized renders a provider timestamp in the user's timezone.
// An empty layout means "2006-01-02 15:04".
func FormatLocalized(timestamp, layout string, loc *time.Location) string {
	if layout == "" {
		layout = "2006-01-02 15:04"
	}
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		if len(timestamp) >= 10 {
			return timestamp[:10]
		}
		return timestamp
	}
	return ts.In(loc).Format(layout)
}

// GroupByCanonicalDay buckets records by the canonical day of a timestamp
// field. Records without the field are dropped.
func GroupByCanonicalDay(records []schema.Record, field string, loc *time.Location) map[string][]schema.Record {
	grouped := make(map[string][]schema.Record)
	for _, rec := range records {
		ts, ok := rec.String(field)
		if !ok {
			continue
		}
		day := CanonicalDay(ts, loc)
		if day == "" {
			continue
		}
		grouped[day] = append(grouped[day], rec)
	}
	return grouped
}

// TravelDays flags days whose bedtime hour shifts more than thresholdHours
// from the median bedtime, wrapping around midnight. Fewer than three
// bedtimes is not enough signal to call anything a travel day.
func TravelDays(sleepData []schema.Record, thresholdHours float64, loc *time.Location) []string {
	type bedtime struct {
		day  string
		hour float64
	}

	var bedtimes []bedtime
	for _, rec := range sleepData {
		ts, ok := rec.String("bedtime_start")
		if !ok {
			continue
		}
		parsed, err := parseTimestamp(ts)
		if err != nil {
			continue
		}
		local := parsed.In(loc)
		day := rec.Day()
		if day == "" {
			day = CanonicalDay(ts, loc)
		}
		bedtimes = append(bedtimes, bedtime{
			day:  day,
			hour: float64(local.Hour()) + float64(local.Minute())/60,
		})
	}
	if len(bedtimes) < 3 {
		return nil
	}

	hours := make([]float64, len(bedtimes))
	for i, b := range bedtimes {
		hours[i] = b.hour
	}
	med := median(hours)

	var travel []string
	for _, b := range bedtimes {
		shift := math.Abs(b.hour - med)
		if math.Min(shift, 24-shift) > thresholdHours {
			travel = append(travel, b.day)
		}
	}
	return travel
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
