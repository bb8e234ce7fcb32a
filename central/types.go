package central

import "github.com/katalvlaran/descstat/core"

// Modes holds the most frequent value(s) of a sequence.
//
// Values lists every element that attains the maximum frequency, in
// order of first occurrence in the input; ties are preserved, never
// collapsed to an arbitrary winner. Count is the shared frequency.
type Modes[T core.Real] struct {
	Values []T
	Count  int
}

// Single returns the unique mode and true when exactly one value
// attains the maximum frequency, or the zero value and false when the
// sequence is multimodal.
func (m Modes[T]) Single() (T, bool) {
	if len(m.Values) == 1 {
		return m.Values[0], true
	}
	var zero T

	return zero, false
}

// Multimodal reports whether more than one value ties for the maximum
// frequency.
func (m Modes[T]) Multimodal() bool {
	return len(m.Values) > 1
}
