// Package core defines the shared numeric primitives and validation
// checks that every descstat package builds on.
//
// What:
//
//   - Real: generic constraint covering every built-in integer and
//     float kind, so callers pass their natural element type and all
//     values are treated uniformly as reals.
//   - Normalization: typed selector between Sample (n−1 divisor,
//     Bessel's correction) and Population (n divisor) statistics.
//   - ValidateSequence: rejects empty sequences and non-finite
//     elements (NaN, ±Inf) before any arithmetic runs.
//   - ValidateEqualLength: rejects paired sequences whose lengths
//     differ; it deliberately does not inspect elements — callers
//     validate each sequence separately with ValidateSequence.
//
// Why:
//
//   - Validation is the leaf dependency of every statistic: all checks
//     run eagerly, so downstream formulas never divide by zero from an
//     empty input and never propagate a NaN silently.
//   - The compiler already rules out non-numeric sequences (strings,
//     booleans, compounds cannot satisfy Real); the runtime check
//     covers the one gap left, non-finite floats.
//
// Complexity:
//
//   - ValidateSequence:   O(n), Memory: O(1).
//   - ValidateEqualLength: O(1), Memory: O(1).
//
// Errors:
//
//   - ErrEmptyInput: a required sequence has zero elements.
//   - ErrNonFinite: a sequence element is NaN or ±Inf.
//   - ErrLengthMismatch: paired sequences differ in length.
//   - ErrBadNormalization: unknown Normalization value.
package core
