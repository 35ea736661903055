// Package chisq defines options, results and error sentinels for
// chi-square statistics.
package chisq

import "errors"

// Sentinel errors for chi-square computation.
var (
	// ErrLengthMismatch is returned when observed and expected differ in length.
	ErrLengthMismatch = errors.New("chisq: observed and expected must have equal length")

	// ErrEmptyInput is returned when there are no counts to test.
	ErrEmptyInput = errors.New("chisq: input must be non-empty")

	// ErrNonPositiveExpected is returned when an expected count is ≤ 0,
	// which would divide by zero or flip the statistic's sign.
	ErrNonPositiveExpected = errors.New("chisq: expected counts must be positive")

	// ErrEmptyTable is returned when the contingency table has no cells
	// or a zero total.
	ErrEmptyTable = errors.New("chisq: table must have at least one observation")

	// ErrZeroMarginal is returned when a row or column sum is zero, making
	// the corresponding expected counts zero.
	ErrZeroMarginal = errors.New("chisq: zero row or column marginal")
)

// Options configures the independence test.
//
// Fields:
//   - ReturnExpected — if true, Result.Expected carries the expected cell
//     counts (row-major); left nil otherwise to avoid the allocation.
type Options struct {
	ReturnExpected bool
}

// DefaultOptions returns Options with sane defaults:
//   - expected counts not materialized (ReturnExpected=false).
func DefaultOptions() Options {
	return Options{ReturnExpected: false}
}

// Result holds the outcome of a chi-square test.
type Result struct {
	// Stat is the Pearson chi-square statistic Σ (O−E)²/E.
	Stat float64

	// DoF is the degrees of freedom: (p−1)·(q−1) for an independence test.
	DoF int

	// Expected holds the expected cell counts (row-major) when requested
	// via Options.ReturnExpected; nil otherwise.
	Expected []float64
}
