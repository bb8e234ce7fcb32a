// Package descstat is a small, strict library for elementary
// descriptive statistics over finite numeric slices.
//
// 🚀 What is descstat?
//
//	A stateless toolkit that brings together the classic descriptive measures:
//		• Central tendency: mean, median, mode (tie-preserving)
//		• Dispersion: variance, standard deviation, range
//		• Bivariate association: covariance, Pearson correlation
//
// ✨ Why choose descstat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict by contract – eager validation, sentinel errors, never a silent NaN
//   - Generic over numerics – every built-in integer and float kind accepted uniformly
//   - Pure functions – no state, no mutation of caller slices, safe from any goroutine
//
// Everything is organized under four subpackages:
//
//	core/        — Real constraint, Normalization modes & sequence validation
//	central/     — Mean, Median, Mode
//	dispersion/  — Variance, StdDev, Range
//	correlation/ — Covariance, Pearson
//
// Quick example:
//
//	xs := []float64{1, 2, 2, 3, 4}
//	m, _ := central.Mean(xs)                        // 2.4
//	v, _ := dispersion.Variance(xs, core.Sample)    // 1.3
//	r, _ := correlation.Pearson(xs, ys)
//
// Every operation validates its input before any arithmetic and reports
// failures as sentinel errors matched with errors.Is. Mathematically
// undefined results (sample variance of a single observation, Pearson
// correlation of a constant sequence) fail loudly instead of returning
// NaN or infinity.
//
//	go get github.com/katalvlaran/descstat
package descstat

// Version is the descstat release version.
const Version = "0.2.0"
