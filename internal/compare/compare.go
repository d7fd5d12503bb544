// Package compare decides whether an extracted value matches its reference.
//
// Matching is exact equality after both sides are rounded to [Digits]
// decimal places. There is no tolerance band.
package compare

import "math"

// Digits is the number of decimal places kept before comparison.
const Digits = 5

var scale = math.Pow(10, Digits)

// Round rounds v to Digits decimal places, half away from zero.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*scale) / scale
}

// Equal reports whether extracted and reference agree to Digits places.
func Equal(extracted, reference float64) bool {
	return Round(extracted) == Round(reference)
}
