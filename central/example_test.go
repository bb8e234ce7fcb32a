package central_test

import (
	"fmt"

	"github.com/katalvlaran/descstat/central"
)

// ExampleMean demonstrates the arithmetic mean of a small sample.
func ExampleMean() {
	m, err := central.Mean([]float64{1, 2, 2, 3, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.2f\n", m)
	// Output:
	// mean=2.40
}

// ExampleMedian demonstrates both length parities.
func ExampleMedian() {
	odd, _ := central.Median([]float64{1, 2, 2, 3, 4})
	even, _ := central.Median([]float64{4, 1, 3, 2})
	fmt.Printf("odd=%.2f even=%.2f\n", odd, even)
	// Output:
	// odd=2.00 even=2.50
}

// ExampleMode demonstrates a multimodal sequence: both tied values are
// returned, in order of first occurrence.
func ExampleMode() {
	m, err := central.Mode([]int{1, 1, 2, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("values:", m.Values)
	fmt.Println("count:", m.Count)
	fmt.Println("multimodal:", m.Multimodal())
	// Output:
	// values: [1 2]
	// count: 2
	// multimodal: true
}
