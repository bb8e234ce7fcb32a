package core

import (
	"fmt"
	"math"
)

// ValidateSequence checks that xs is a usable numeric sequence:
// non-empty, with every element a finite real number.
//
// Returns ErrEmptyInput when len(xs) == 0, or ErrNonFinite (wrapped
// with the offending index) when an element is NaN or ±Inf.
// A nil error means every statistic in this library is safe to
// compute on xs without further element checks.
func ValidateSequence[T Real](xs []T) error {
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	for i, v := range xs {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
	}

	return nil
}

// ValidateEqualLength checks that paired sequences a and b have the
// same length. It does not inspect elements; run ValidateSequence on
// each sequence separately.
//
// Returns ErrLengthMismatch (wrapped with both lengths) on failure.
func ValidateEqualLength[T Real](a, b []T) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}

	return nil
}
