package correlation

import "errors"

var (
	// ErrUndefinedCovariance indicates sample covariance was requested
	// for a single paired observation: the n−1 divisor is zero, so the
	// result is mathematically undefined.
	ErrUndefinedCovariance = errors.New("correlation: sample covariance is undefined for a single observation (division by zero)")

	// ErrZeroVariance indicates Pearson correlation was requested for
	// a constant sequence. Zero variance makes the coefficient
	// mathematically undefined, so the call fails instead of returning
	// NaN.
	ErrZeroVariance = errors.New("correlation: cannot compute when one or both sequences have zero variance (division by zero)")
)
