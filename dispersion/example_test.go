package dispersion_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/descstat/core"
	"github.com/katalvlaran/descstat/dispersion"
)

// ExampleVariance demonstrates the sample/population divisor choice on
// the same data.
func ExampleVariance() {
	xs := []float64{1, 2, 2, 3, 4}

	s, _ := dispersion.Variance(xs, core.Sample)
	p, _ := dispersion.Variance(xs, core.Population)
	fmt.Printf("sample=%.2f population=%.2f\n", s, p)
	// Output:
	// sample=1.30 population=1.04
}

// ExampleStdDev demonstrates the undefined single-observation sample
// case failing loudly.
func ExampleStdDev() {
	sd, _ := dispersion.StdDev([]float64{1, 2, 2, 3, 4}, core.Sample)
	fmt.Printf("stddev=%.6f\n", sd)

	_, err := dispersion.StdDev([]float64{5}, core.Sample)
	fmt.Println(errors.Is(err, dispersion.ErrUndefinedVariance))
	// Output:
	// stddev=1.140175
	// true
}

// ExampleRange demonstrates max minus min.
func ExampleRange() {
	r, _ := dispersion.Range([]int{-4, 0, 6})
	fmt.Printf("range=%.0f\n", r)
	// Output:
	// range=10
}
