package core

import "github.com/artkessler/pulse/schema"

// BuildBriefing extracts the morning snapshot for one night record and its
// matching readiness record. Either record may be nil.
func BuildBriefing(day string, sleep, readiness schema.Record) schema.Briefing {
	b := schema.Briefing{Day: day}

	if score, ok := sleepScoreOf(sleep); ok {
		b.SleepScore = schema.FloatPtr(score)
	}
	if v, ok := sleep.Float("total_sleep_duration"); ok {
		b.DurationHours = schema.FloatPtr(HoursFromSeconds(v))
	}
	if v, ok := sleep.Float("average_hrv"); ok {
		b.AvgHRV = schema.FloatPtr(v)
	}
	if v, ok := sleep.Float("lowest_heart_rate"); ok {
		b.RestingHR = schema.FloatPtr(v)
	}
	if v, ok := sleep.Float("efficiency"); ok {
		b.Efficiency = schema.FloatPtr(v)
	}
	if v, ok := readiness.Float("score"); ok {
		b.ReadinessScore = schema.FloatPtr(v)
	}
	return b
}

// BriefingBaselineFrom averages briefing metrics over a trailing window of
// sleep records, usually the two weeks before the target date.
func BriefingBaselineFrom(sleepData []schema.Record) *schema.BriefingBaseline {
	if len(sleepData) == 0 {
		return nil
	}

	var scores, hrvs, rhrs, hours []float64
	for _, rec := range sleepData {
		if score, ok := sleepScoreOf(rec); ok {
			scores = append(scores, score)
		}
		if v, ok := rec.Float("average_hrv"); ok {
			hrvs = append(hrvs, v)
		}
		if v, ok := rec.Float("lowest_heart_rate"); ok {
			rhrs = append(rhrs, v)
		}
		if v, ok := rec.Float("total_sleep_duration"); ok {
			hours = append(hours, v/3600)
		}
	}

	return &schema.BriefingBaseline{
		SleepScore:    avgPtr(scores, 1),
		AvgHRV:        avgPtr(hrvs, 1),
		RestingHR:     avgPtr(rhrs, 1),
		DurationHours: avgPtr(hours, 1),
		Days:          len(sleepData),
	}
}

// AttachBaseline links a baseline to the briefing and computes deltas for
// the metrics both sides carry (target minus baseline, 1 decimal).
func AttachBaseline(b *schema.Briefing, base *schema.BriefingBaseline) {
	if base == nil {
		return
	}
	b.Baseline = base

	deltas := make(map[string]float64)
	add := func(key string, cur, ref *float64) {
		if cur != nil && ref != nil {
			deltas[key] = roundN(*cur-*ref, 1)
		}
	}
	add("sleep_score", b.SleepScore, base.SleepScore)
	add("avg_hrv", b.AvgHRV, base.AvgHRV)
	add("resting_hr", b.RestingHR, base.RestingHR)
	add("duration_hours", b.DurationHours, base.DurationHours)
	if len(deltas) > 0 {
		b.Deltas = deltas
	}
}
