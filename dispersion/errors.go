package dispersion

import "errors"

var (
	// ErrUndefinedVariance indicates a sample statistic was requested
	// for a single observation: the n−1 divisor is zero, so the result
	// is mathematically undefined.
	ErrUndefinedVariance = errors.New("dispersion: sample variance is undefined for a single observation (division by zero)")
)
