package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceFloat converts a loosely typed record value to float64.
// JSON decoding yields float64 or json.Number, but providers have been seen
// shipping integers and numeric strings too, so all of those coerce.
// Booleans and non-numeric strings do not.
func CoerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FloatPtr returns a pointer to v. Handy for optional score fields.
func FloatPtr(v float64) *float64 {
	return &v
}

// FormatFloat renders a float with the minimal number of decimals,
// so 64.0 prints as "64" and 58.3 prints as "58.3".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
