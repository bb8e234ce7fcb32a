// Package dispersion computes the spread statistics of a numeric
// sequence: variance, standard deviation and range.
//
// What:
//
//   - Variance: mean squared deviation from the arithmetic mean, with
//     the divisor selected by core.Normalization (Sample → n−1,
//     Population → n).
//   - StdDev: square root of Variance under the same normalization.
//   - Range: maximum element minus minimum element.
//
// Why:
//
//   - Spread: how far a dataset strays from its center.
//   - Building block: Pearson correlation normalizes covariance by the
//     standard deviations and reuses Variance directly.
//
// Sample vs Population:
//
//	Sample variance divides by n−1 and is undefined for a single
//	observation; that case fails with ErrUndefinedVariance rather than
//	being silently guarded or returned as NaN. Population variance
//	divides by n and is defined for every n ≥ 1.
//
// Complexity:
//
//   - Variance: O(n), Memory: O(1)   (two passes: mean, then deviations).
//   - StdDev:   O(n), Memory: O(1).
//   - Range:    O(n), Memory: O(1).
//
// Errors:
//
//   - core.ErrEmptyInput: the sequence has zero elements.
//   - core.ErrNonFinite: an element is NaN or ±Inf.
//   - core.ErrBadNormalization: unknown normalization mode.
//   - ErrUndefinedVariance: Sample normalization with n == 1.
package dispersion
