// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
)

// SafeDivide divides value by divisor and returns 0 when the divisor is not
// positive, so callers never observe NaN or Inf.
func SafeDivide(value, divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}
	return value / divisor
}

// RoundToInt rounds half away from zero and converts to int64.
func RoundToInt(val float64) int64 {
	return int64(math.Round(val))
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// FirstPositive returns the first value greater than zero, or 0 if none is.
func FirstPositive(values ...int64) int64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
