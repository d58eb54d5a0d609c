// Package core implements the pulse analysis engine: stress normalization,
// sleep scoring, weekly aggregation, threshold alerts, morning briefings and
// timezone day alignment. All functions are pure and operate on provider
// records already fetched by the API layer.
package core

import "math"

// roundN rounds to the given number of decimal places.
func roundN(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// avgPtr averages values with rounding, or nil when there are none.
func avgPtr(values []float64, decimals int) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := roundN(sum/float64(len(values)), decimals)
	return &avg
}
