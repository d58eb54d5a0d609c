package core

import "github.com/artkessler/pulse/schema"

// BuildActivityDays extracts typed activity rows from raw daily records.
// Records without a day field are skipped; missing metrics stay nil.
func BuildActivityDays(records []schema.Record) []schema.ActivityDay {
	rows := make([]schema.ActivityDay, 0, len(records))
	for _, rec := range records {
		day := rec.Day()
		if day == "" {
			continue
		}
		row := schema.ActivityDay{Day: day}
		if v, ok := rec.Float("score"); ok {
			row.Score = schema.FloatPtr(v)
		}
		if v, ok := rec.Float("steps"); ok {
			row.Steps = schema.FloatPtr(v)
		}
		if v, ok := rec.Float("active_calories"); ok {
			row.ActiveCalories = schema.FloatPtr(v)
		}
		if v, ok := rec.Float("total_calories"); ok {
			row.TotalCalories = schema.FloatPtr(v)
		}
		rows = append(rows, row)
	}
	return rows
}
