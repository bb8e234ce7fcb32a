// Package correlation computes bivariate association statistics over
// two equal-length numeric sequences: covariance and the Pearson
// correlation coefficient.
//
// What:
//
//   - Covariance: mean product of index-aligned deviations from each
//     sequence's own mean, divided by n−1 (core.Sample) or n
//     (core.Population).
//   - Pearson: sample covariance normalized by the sample standard
//     deviations of both sequences; bounded in [-1, 1], measuring
//     linear association.
//
// Why:
//
//   - Relationship detection: does one variable move with the other?
//   - Foundation for regression and feature-selection pipelines.
//
// Pairing contract:
//
//	Element i of each sequence forms one bivariate observation; the
//	sequences must have exactly equal length. Each sequence is
//	validated independently before the length check.
//
// Complexity:
//
//   - Covariance: O(n), Memory: O(1).
//   - Pearson:    O(n), Memory: O(1)   (three passes: two variances, one covariance).
//
// Errors:
//
//   - core.ErrEmptyInput: either sequence has zero elements.
//   - core.ErrNonFinite: an element is NaN or ±Inf.
//   - core.ErrLengthMismatch: sequences differ in length.
//   - core.ErrBadNormalization: unknown normalization mode.
//   - ErrUndefinedCovariance: Sample normalization with n == 1.
//   - ErrZeroVariance: Pearson on a constant sequence (zero sample
//     variance) — a deliberate hard failure, never NaN.
package correlation
