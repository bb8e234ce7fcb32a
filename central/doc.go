// Package central computes the central-tendency statistics of a
// numeric sequence: mean, median and mode.
//
// What:
//
//   - Mean: arithmetic mean, sum of elements over the count.
//   - Median: middle element of the sorted sequence (average of the
//     two middle elements for even length). The input is never
//     mutated; sorting happens on a copy.
//   - Mode: the most frequent value(s). Ties are all returned in a
//     Modes result, ordered by first occurrence in the input, so the
//     caller decides how to treat a multimodal sequence.
//
// Why:
//
//   - Summaries: one-number descriptions of a dataset's center.
//   - Building block: dispersion and correlation are defined in terms
//     of the mean and reuse Mean directly.
//
// Complexity:
//
//   - Mean:   O(n),       Memory: O(1).
//   - Median: O(n log n), Memory: O(n)   (sorted copy).
//   - Mode:   O(n),       Memory: O(k)   (k = distinct values).
//
// Errors:
//
//   - core.ErrEmptyInput: the sequence has zero elements.
//   - core.ErrNonFinite: an element is NaN or ±Inf.
package central
