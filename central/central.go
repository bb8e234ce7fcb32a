package central

import (
	"slices"

	"github.com/katalvlaran/descstat/core"
)

// Mean returns the arithmetic mean of xs.
//
// The sequence is validated first: an empty input or a non-finite
// element fails before any arithmetic. Division by zero cannot occur
// since empty sequences are rejected.
//
// Complexity: O(n) time, O(1) memory.
func Mean[T core.Real](xs []T) (float64, error) {
	if err := core.ValidateSequence(xs); err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}

	return sum / float64(len(xs)), nil
}

// Median returns the middle value of xs under standard numeric order:
// the central element for odd length, the average of the two central
// elements for even length.
//
// xs is never mutated; sorting happens on a private copy.
//
// Complexity: O(n log n) time, O(n) memory.
func Median[T core.Real](xs []T) (float64, error) {
	if err := core.ValidateSequence(xs); err != nil {
		return 0, err
	}

	sorted := make([]T, len(xs))
	copy(sorted, xs)
	slices.Sort(sorted)

	n := len(sorted)
	mid := n / 2
	if n%2 == 0 {
		return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, nil
	}

	return float64(sorted[mid]), nil
}

// Mode returns the most frequent value(s) of xs as a Modes result.
//
// When several distinct values share the maximum frequency, all of
// them are returned, ordered by first occurrence in xs; the order is
// deterministic across calls.
//
// Complexity: O(n) time, O(k) memory for k distinct values.
func Mode[T core.Real](xs []T) (Modes[T], error) {
	if err := core.ValidateSequence(xs); err != nil {
		return Modes[T]{}, err
	}

	counts := make(map[T]int, len(xs))
	order := make([]T, 0, len(xs)) // distinct values, first occurrence first
	for _, v := range xs {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := 0
	for _, v := range order {
		if counts[v] > best {
			best = counts[v]
		}
	}

	modes := make([]T, 0, 1)
	for _, v := range order {
		if counts[v] == best {
			modes = append(modes, v)
		}
	}

	return Modes[T]{Values: modes, Count: best}, nil
}
