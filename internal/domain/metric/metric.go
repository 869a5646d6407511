// Package metric holds the numeric rules shared by team aggregation and
// player stat derivation.
package metric

import (
	"math"
	"strconv"
)

// MaxExact is the largest magnitude a float64 holds as an exact integer.
// Stored values beyond it are treated as unrecorded.
const MaxExact = 1 << 53

// Round rounds to the nearest integer, ties away from zero.
// NaN, infinities and magnitudes beyond MaxExact round to 0.
func Round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Round(v)
	if math.Abs(r) > MaxExact {
		return 0
	}
	return int(r)
}

// Ratio returns numerator/denominator as a rounded percentage, or 0 when the
// denominator is not positive.
func Ratio(numerator, denominator float64) int {
	if denominator <= 0 {
		return 0
	}
	return Round(numerator / denominator * 100)
}

// Average returns the rounded mean of sum over count, or 0 when count is 0.
func Average(sum float64, count int) int {
	if count <= 0 {
		return 0
	}
	return Round(sum / float64(count))
}

// Percent formats a value as "<value>%". Integral values print without a
// decimal part; values are never clamped.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10) + "%"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// RatioPercent is Ratio formatted with Percent.
func RatioPercent(numerator, denominator float64) string {
	return Percent(float64(Ratio(numerator, denominator)))
}
