package vec

import "errors"

var (
	// ErrLengthMismatch indicates operand (or destination) slices of
	// differing lengths.
	ErrLengthMismatch = errors.New("vec: operands must have equal length")

	// ErrEmptyInput indicates a moment was requested over no elements.
	ErrEmptyInput = errors.New("vec: input must be non-empty")

	// ErrTooFewPoints indicates a sample statistic needs more elements
	// (variance needs at least two).
	ErrTooFewPoints = errors.New("vec: at least two points required")
)
