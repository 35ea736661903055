// Package crosstab defines table types, options and error sentinels
// for cross-tabulation.
package crosstab

import "errors"

// Sentinel errors for cross-tabulation.
var (
	// ErrLengthMismatch is returned by Validate and Generic when the two
	// input sequences differ in length.
	ErrLengthMismatch = errors.New("crosstab: input sequences must have equal length")

	// ErrLookupMode is returned when Options carries an unknown LookupMode.
	ErrLookupMode = errors.New("crosstab: unknown lookup mode")

	// ErrBadShape is returned by New when the counts slice does not match
	// the label dimensions.
	ErrBadShape = errors.New("crosstab: counts length must equal rows*cols")

	// ErrNegativeCount is returned by New when a cell count is negative.
	ErrNegativeCount = errors.New("crosstab: counts must be non-negative")
)

// LookupMode controls how Fast resolves each value to its rank among the
// sorted distinct values.
//
//   - HashLookup   — build one map[value]rank per side and probe it for
//     every element. O(n) lookups after an O(p) build.
//
//   - BinarySearch — keep only the sorted distinct slice and binary-search
//     it per element. O(n log p) lookups, zero map overhead; wins when p is
//     tiny or when allocation pressure matters.
type LookupMode int

const (
	// HashLookup mode: amortized O(1) rank lookups via a prebuilt map.
	HashLookup LookupMode = iota

	// BinarySearch mode: O(log p) rank lookups over the sorted label slice.
	BinarySearch
)

// Options configures the fast tabulation path.
//
// Fields:
//   - Lookup — rank-lookup strategy (HashLookup or BinarySearch).
//
// Example:
//
//	opts := crosstab.DefaultOptions()
//	opts.Lookup = crosstab.BinarySearch
//	t, err := crosstab.Fast(a, b, &opts)
type Options struct {
	Lookup LookupMode
}

// DefaultOptions returns Options with sane defaults:
//   - HashLookup (amortized O(1) per element).
func DefaultOptions() Options {
	return Options{Lookup: HashLookup}
}

// Table is a p×q contingency table over int64 codes.
// Counts are stored row-major in a flat slice; RowLabels and ColLabels hold
// the sorted distinct values of the first and second input respectively.
type Table struct {
	rows, cols int
	counts     []int // flat row-major storage, len == rows*cols

	// RowLabels are the sorted distinct values of the first sequence.
	RowLabels []int64
	// ColLabels are the sorted distinct values of the second sequence.
	ColLabels []int64
}

// New builds a Table from externally sourced counts (row-major, one entry
// per label pair). Use it to bring tables produced elsewhere into statkit,
// e.g. for a chi-square test on pre-aggregated data.
//
// Errors:
//   - ErrBadShape — len(counts) != len(rowLabels)*len(colLabels).
//   - ErrNegativeCount — some cell is negative.
func New(rowLabels, colLabels []int64, counts []int) (*Table, error) {
	p, q := len(rowLabels), len(colLabels)
	if len(counts) != p*q {
		return nil, ErrBadShape
	}
	own := make([]int, len(counts))
	for i, c := range counts {
		if c < 0 {
			return nil, ErrNegativeCount
		}
		own[i] = c
	}
	return &Table{
		rows:      p,
		cols:      q,
		counts:    own,
		RowLabels: append([]int64(nil), rowLabels...),
		ColLabels: append([]int64(nil), colLabels...),
	}, nil
}

// Dims returns the table dimensions (p rows, q columns).
func (t *Table) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// At returns the count in cell (i, j). Indices must satisfy
// 0 ≤ i < rows and 0 ≤ j < cols; At performs no bounds checking beyond
// the runtime's, matching the package's no-validation fast-path contract.
func (t *Table) At(i, j int) int {
	return t.counts[i*t.cols+j]
}

// Total returns the sum of all counts, which equals the input length n.
func (t *Table) Total() int {
	var sum int
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Counts returns a copy of the flat row-major count slice.
func (t *Table) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)
	return out
}
