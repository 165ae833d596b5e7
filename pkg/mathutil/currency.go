// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
)

// IsPositive reports whether a value is strictly greater than zero.
func IsPositive(val float64) bool {
	return val > 0
}

// Clamp limits val to [lo, hi]. NaN is returned as lo.
func Clamp(val, lo, hi float64) float64 {
	if math.IsNaN(val) || val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the minimum of the values, or zero when there are none.
func Min(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the maximum of the values, or zero when there are none.
func Max(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
