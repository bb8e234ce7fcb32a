package core

import "errors"

var (
	// ErrEmptyInput indicates a required sequence has zero elements.
	ErrEmptyInput = errors.New("core: input sequence must be non-empty")

	// ErrNonFinite indicates a sequence element is NaN or ±Inf and
	// therefore not a usable real number.
	ErrNonFinite = errors.New("core: sequence element is not a finite number")

	// ErrLengthMismatch indicates two paired sequences differ in length.
	ErrLengthMismatch = errors.New("core: paired sequences must have equal length")

	// ErrBadNormalization indicates an unknown Normalization value.
	ErrBadNormalization = errors.New("core: unknown normalization mode")
)
