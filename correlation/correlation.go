package correlation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descstat/central"
	"github.com/katalvlaran/descstat/core"
	"github.com/katalvlaran/descstat/dispersion"
)

// Covariance returns the covariance of the index-aligned observation
// pairs (a[i], b[i]), divided by n−1 (core.Sample) or n
// (core.Population).
//
// Both sequences are validated independently, then checked for equal
// length. Sample covariance of a single pair is undefined and fails
// with ErrUndefinedCovariance.
//
// Complexity: O(n) time, O(1) memory.
func Covariance[T core.Real](a, b []T, norm core.Normalization) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	if !norm.Valid() {
		return 0, core.ErrBadNormalization
	}

	n := len(a)
	if norm == core.Sample && n < 2 {
		return 0, fmt.Errorf("%w: n=%d", ErrUndefinedCovariance, n)
	}

	meanA, err := central.Mean(a)
	if err != nil {
		return 0, err
	}
	meanB, err := central.Mean(b)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += (float64(a[i]) - meanA) * (float64(b[i]) - meanB)
	}

	div := float64(n)
	if norm == core.Sample {
		div = float64(n - 1)
	}

	return sum / div, nil
}

// Pearson returns the Pearson correlation coefficient of a and b:
// sample covariance divided by the product of the sample standard
// deviations. The result lies in [-1, 1] up to floating-point error.
//
// A constant sequence has zero sample variance, which makes the
// coefficient undefined; that case fails with ErrZeroVariance rather
// than returning NaN. A single observation pair propagates the
// underlying sample-variance failure.
//
// Complexity: O(n) time, O(1) memory.
func Pearson[T core.Real](a, b []T) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	varA, err := dispersion.Variance(a, core.Sample)
	if err != nil {
		return 0, err
	}
	varB, err := dispersion.Variance(b, core.Sample)
	if err != nil {
		return 0, err
	}
	if varA == 0 || varB == 0 {
		return 0, ErrZeroVariance
	}

	cov, err := Covariance(a, b, core.Sample)
	if err != nil {
		return 0, err
	}

	return cov / (math.Sqrt(varA) * math.Sqrt(varB)), nil
}

// validatePair runs the full eager validation for a bivariate call:
// each sequence on its own, then the length pairing.
func validatePair[T core.Real](a, b []T) error {
	if err := core.ValidateSequence(a); err != nil {
		return err
	}
	if err := core.ValidateSequence(b); err != nil {
		return err
	}

	return core.ValidateEqualLength(a, b)
}
