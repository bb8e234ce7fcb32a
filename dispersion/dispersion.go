package dispersion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descstat/central"
	"github.com/katalvlaran/descstat/core"
)

// Variance returns the mean squared deviation of xs from its
// arithmetic mean, divided by n−1 (core.Sample) or n (core.Population).
//
// Sample variance of a single observation is undefined and fails with
// ErrUndefinedVariance; no silent guard or NaN is ever returned.
//
// Complexity: O(n) time, O(1) memory.
func Variance[T core.Real](xs []T, norm core.Normalization) (float64, error) {
	if err := core.ValidateSequence(xs); err != nil {
		return 0, err
	}
	if !norm.Valid() {
		return 0, core.ErrBadNormalization
	}

	n := len(xs)
	if norm == core.Sample && n < 2 {
		return 0, fmt.Errorf("%w: n=%d", ErrUndefinedVariance, n)
	}

	mean, err := central.Mean(xs)
	if err != nil {
		return 0, err
	}

	var sumSq float64
	for _, v := range xs {
		d := float64(v) - mean
		sumSq += d * d
	}

	div := float64(n)
	if norm == core.Sample {
		div = float64(n - 1)
	}

	return sumSq / div, nil
}

// StdDev returns the square root of Variance(xs, norm).
//
// Any Variance failure propagates unchanged, including
// ErrUndefinedVariance for a single-observation sample; the result is
// never clamped.
//
// Complexity: O(n) time, O(1) memory.
func StdDev[T core.Real](xs []T, norm core.Normalization) (float64, error) {
	v, err := Variance(xs, norm)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Range returns the difference between the maximum and minimum
// elements of xs.
//
// Complexity: O(n) time, O(1) memory.
func Range[T core.Real](xs []T) (float64, error) {
	if err := core.ValidateSequence(xs); err != nil {
		return 0, err
	}

	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return float64(hi) - float64(lo), nil
}
