package core

// Real is the set of element types descstat accepts: every built-in
// integer and float kind, including named types defined on them.
// All values are treated uniformly as real numbers; computations
// convert to float64 internally.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Normalization selects the divisor used by variance-like statistics.
//
//   - Sample     — divide by n−1 (Bessel's correction); estimates a
//     population parameter from a subset. Undefined for n == 1.
//   - Population — divide by n; describes the given data exactly.
//     Defined for every n ≥ 1.
type Normalization int

const (
	// Sample applies Bessel's correction: sums of deviations are divided by n−1.
	Sample Normalization = iota

	// Population divides sums of deviations by the full count n.
	Population
)

// Valid reports whether n is a known normalization mode.
func (n Normalization) Valid() bool {
	return n == Sample || n == Population
}

// String returns the canonical name of the normalization mode.
func (n Normalization) String() string {
	switch n {
	case Sample:
		return "sample"
	case Population:
		return "population"
	default:
		return "unknown"
	}
}
