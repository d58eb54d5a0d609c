// Package schema has configs, models and global variables for all parts of pulse.
package schema

// Record is a single day record as returned by the wearable API.
// Fields vary by provider, firmware version, and endpoint, so records stay
// loosely typed and readers coerce the fields they care about.
type Record map[string]any

// Float looks up a key and coerces its value to float64.
// The second return value is false when the key is absent or not numeric.
func (r Record) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return CoerceFloat(v)
}

// String looks up a key and returns its value when it is a string.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Child returns a nested record stored under the key, or nil.
func (r Record) Child(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// Day returns the calendar day string of the record, or "" when missing.
func (r Record) Day() string {
	s, _ := r.String("day")
	return s
}
