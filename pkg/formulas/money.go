// Package formulas holds the small numeric helpers shared by the planning modules.
package formulas

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// Sum adds up the values, returning 0 for an empty slice
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

// SafeRatio divides numerator by denominator.
// A non-positive denominator yields a ratio of 1 (treated as fully consumed).
func SafeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 1
	}
	return numerator / denominator
}

// Round2 rounds a monetary amount to two decimals. The exact binary value is
// rounded half away from zero, so 1.005 (stored as 1.00499...) becomes 1.00.
func Round2(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	rounded, _ := decimal.NewFromFloatWithExponent(value, -2).Float64()
	return rounded
}

// CeilDiv returns ceil(amount / divisor), substituting 1 for a zero divisor
func CeilDiv(amount, divisor float64) int {
	if divisor == 0 {
		divisor = 1
	}
	return int(math.Ceil(amount / divisor))
}
