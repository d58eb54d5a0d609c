package core

import (
	"math"
	"strings"

	"github.com/artkessler/pulse/schema"
)

// clampScore bounds a raw value to the canonical [0,100] stress scale.
func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// toScore coerces a raw record value onto the canonical scale.
// Providers have shipped numeric strings here, so coercion is loose.
func toScore(v any) (float64, bool) {
	f, ok := schema.CoerceFloat(v)
	if !ok {
		return 0, false
	}
	return round1(clampScore(f)), true
}

// ExtractDirectStressScore scans records in call order for a stress score
// reported directly by the provider. Within each record, numeric score fields
// are probed before qualitative labels; the first usable signal wins.
func ExtractDirectStressScore(records ...schema.Record) (float64, bool) {
	for _, rec := range records {
		if rec == nil {
			continue
		}
		for _, key := range schema.DirectScoreKeys {
			v, present := rec[key]
			if !present {
				continue
			}
			if score, ok := toScore(v); ok {
				return score, true
			}
		}
		for _, key := range schema.DirectStatusKeys {
			label, ok := rec.String(key)
			if !ok {
				continue
			}
			if score, ok := schema.StatusToScore[strings.ToLower(strings.TrimSpace(label))]; ok {
				return score, true
			}
		}
	}
	return 0, false
}

// proxyScore is the outcome of deriving stress from recovery signals.
type proxyScore struct {
	score      *float64
	components []string
	reason     string
}

// deriveProxyStressScore estimates stress from whatever recovery signals are
// present: HRV suppression and RHR elevation against personal baselines,
// inverted readiness contributors, and inverted sleep efficiency. Components
// are averaged without weights. Missing or malformed fields are absent
// signals, never errors.
func deriveProxyStressScore(sleep, readiness schema.Record, baselineHRV, baselineRHR float64) proxyScore {
	var parts []float64
	var names []string

	if hrv, ok := sleep.Float("average_hrv"); ok && baselineHRV > 0 {
		parts = append(parts, clampScore(50+((baselineHRV-hrv)/baselineHRV)*50))
		names = append(names, "hrv")
	}
	if rhr, ok := sleep.Float("lowest_heart_rate"); ok && baselineRHR > 0 {
		parts = append(parts, clampScore(50+((rhr-baselineRHR)/baselineRHR)*50))
		names = append(names, "resting_hr")
	}

	// Contributors report "higher is better"; nested map wins over top level.
	contributors := readiness.Child("contributors")
	for _, key := range schema.StressContributorKeys {
		v, present := contributors[key]
		if !present {
			v, present = readiness[key]
		}
		if !present {
			continue
		}
		if cv, ok := toScore(v); ok {
			parts = append(parts, clampScore(100-cv))
			names = append(names, key)
		}
	}

	if v, present := sleep["efficiency"]; present {
		if eff, ok := toScore(v); ok {
			parts = append(parts, clampScore(100-eff))
			names = append(names, "sleep_efficiency")
		}
	}

	if len(parts) == 0 {
		return proxyScore{reason: "insufficient signals"}
	}

	var sum float64
	for _, p := range parts {
		sum += p
	}
	avg := round1(sum / float64(len(parts)))
	return proxyScore{
		score:      &avg,
		components: names,
		reason:     "derived from HRV/RHR/readiness contributors",
	}
}

// StressStatusFor buckets a score into a qualitative band.
func StressStatusFor(score *float64) schema.StressStatus {
	switch {
	case score == nil:
		return schema.UnknownStress
	case *score <= 40:
		return schema.LowStress
	case *score <= 65:
		return schema.ModerateStress
	default:
		return schema.HighStress
	}
}

// trendDirectionFor classifies a weekly trend delta. Small deltas within
// +/-2 points are noise and read as stable.
func trendDirectionFor(trend *float64) schema.TrendDirection {
	switch {
	case trend == nil:
		return schema.TrendUnknown
	case *trend > 2:
		return schema.TrendUp
	case *trend < -2:
		return schema.TrendDown
	default:
		return schema.TrendStable
	}
}

// BuildStressDay normalizes one day of provider data into a StressDay.
// A direct provider score always wins over the derived proxy.
func BuildStressDay(day string, sleep, readiness, stress schema.Record, baselineHRV, baselineRHR float64) schema.StressDay {
	if score, ok := ExtractDirectStressScore(stress, readiness, sleep); ok {
		return schema.StressDay{
			Day:        day,
			Score:      &score,
			Status:     StressStatusFor(&score),
			Source:     schema.DirectSource,
			Components: []string{},
			Label:      "direct stress",
		}
	}

	proxy := deriveProxyStressScore(sleep, readiness, baselineHRV, baselineRHR)
	source := schema.UnavailableSource
	if proxy.score != nil {
		source = schema.DerivedSource
	}
	components := proxy.components
	if components == nil {
		components = []string{}
	}
	return schema.StressDay{
		Day:        day,
		Score:      proxy.score,
		Status:     StressStatusFor(proxy.score),
		Source:     source,
		Derived:    proxy.score != nil,
		Components: components,
		Label:      proxy.reason,
	}
}

// SummarizeWeeklyStress normalizes a window of provider data into per-day
// stress outcomes and aggregates them. Readiness and stress records are
// matched to sleep records by their "day" field; sleep records without a day
// are skipped. When no day in the window produces a score, the summary is
// all-null but still carries the per-day array so callers can show why.
func SummarizeWeeklyStress(sleepData, readinessData, stressData []schema.Record) schema.WeeklyStressSummary {
	readinessByDay := indexByDay(readinessData)
	stressByDay := indexByDay(stressData)

	baselineHRV := baselineFrom(sleepData, "average_hrv", schema.DefaultBaselineHRV)
	baselineRHR := baselineFrom(sleepData, "lowest_heart_rate", schema.DefaultBaselineRHR)

	days := make([]schema.StressDay, 0, len(sleepData))
	for _, sleep := range sleepData {
		day := sleep.Day()
		if day == "" {
			continue
		}
		days = append(days, BuildStressDay(day, sleep, readinessByDay[day], stressByDay[day], baselineHRV, baselineRHR))
	}

	valid := make([]schema.StressDay, 0, len(days))
	for _, d := range days {
		if d.Score != nil {
			valid = append(valid, d)
		}
	}

	if len(valid) == 0 {
		return schema.WeeklyStressSummary{
			Status:         schema.UnknownStress,
			TrendDirection: schema.TrendUnknown,
			Days:           days,
		}
	}

	var sum float64
	for _, d := range valid {
		sum += *d.Score
	}
	avg := round1(sum / float64(len(valid)))

	// Trend compares the back half of the window against the front half.
	trend := 0.0
	if half := len(valid) / 2; half >= 1 {
		trend = round1(meanScore(valid[half:]) - meanScore(valid[:half]))
	}

	// Ties go to the earliest day in the window.
	best, worst := valid[0], valid[0]
	for _, d := range valid[1:] {
		if *d.Score < *best.Score {
			best = d
		}
		if *d.Score > *worst.Score {
			worst = d
		}
	}

	var derived, direct int
	for _, d := range valid {
		if d.Derived {
			derived++
		}
		if d.Source == schema.DirectSource {
			direct++
		}
	}

	return schema.WeeklyStressSummary{
		Avg:            &avg,
		Status:         StressStatusFor(&avg),
		BestDay:        best.Day,
		WorstDay:       worst.Day,
		Trend:          &trend,
		TrendDirection: trendDirectionFor(&trend),
		DaysTracked:    len(valid),
		DerivedDays:    derived,
		DirectDays:     direct,
		Days:           valid,
	}
}

// CalculateStressBaseline returns the average stress over the window, or nil
// when no day produced a score.
func CalculateStressBaseline(sleepData, readinessData, stressData []schema.Record) *float64 {
	return SummarizeWeeklyStress(sleepData, readinessData, stressData).Avg
}

// indexByDay maps records by their "day" field. Records without a day are
// dropped; duplicate days keep the last record, matching provider pagination.
func indexByDay(records []schema.Record) map[string]schema.Record {
	byDay := make(map[string]schema.Record, len(records))
	for _, rec := range records {
		if day := rec.Day(); day != "" {
			byDay[day] = rec
		}
	}
	return byDay
}

// baselineFrom averages a numeric field across records, with a population
// fallback when no record carries the field.
func baselineFrom(records []schema.Record, key string, fallback float64) float64 {
	var sum float64
	var n int
	for _, rec := range records {
		if v, ok := rec.Float(key); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}

func meanScore(days []schema.StressDay) float64 {
	var sum float64
	for _, d := range days {
		sum += *d.Score
	}
	return sum / float64(len(days))
}
