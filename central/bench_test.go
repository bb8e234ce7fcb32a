package central_test

import (
	"testing"

	"github.com/katalvlaran/descstat/central"
)

// benchSequence builds a predictable n-element sequence with repeats,
// so Mode has real frequency work to do.
func benchSequence(n int) []float64 {
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i % 100)
	}

	return xs
}

func benchmarkMean(b *testing.B, n int) {
	xs := benchSequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := central.Mean(xs); err != nil {
			b.Fatalf("Mean failed: %v", err)
		}
	}
}

func benchmarkMedian(b *testing.B, n int) {
	xs := benchSequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := central.Median(xs); err != nil {
			b.Fatalf("Median failed: %v", err)
		}
	}
}

func benchmarkMode(b *testing.B, n int) {
	xs := benchSequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := central.Mode(xs); err != nil {
			b.Fatalf("Mode failed: %v", err)
		}
	}
}

// BenchmarkMean_Small benchmarks Mean on 100 elements.
func BenchmarkMean_Small(b *testing.B) { benchmarkMean(b, 100) }

// BenchmarkMean_Large benchmarks Mean on 100k elements.
func BenchmarkMean_Large(b *testing.B) { benchmarkMean(b, 100_000) }

// BenchmarkMedian_Small benchmarks the sort-based Median on 100 elements.
func BenchmarkMedian_Small(b *testing.B) { benchmarkMedian(b, 100) }

// BenchmarkMedian_Large benchmarks the sort-based Median on 100k elements.
func BenchmarkMedian_Large(b *testing.B) { benchmarkMedian(b, 100_000) }

// BenchmarkMode_Small benchmarks the frequency-map Mode on 100 elements.
func BenchmarkMode_Small(b *testing.B) { benchmarkMode(b, 100) }

// BenchmarkMode_Large benchmarks the frequency-map Mode on 100k elements.
func BenchmarkMode_Large(b *testing.B) { benchmarkMode(b, 100_000) }
