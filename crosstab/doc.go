// Package crosstab builds contingency tables (cross-tabulations) from two
// paired sequences of categorical codes, with a strictly typed fast path and
// a generic reference path.
//
// 🚀 What is a contingency table?
//
//	Given two paired observations a and b of equal length n, the p×q table
//	counts how often each (value-of-a, value-of-b) combination occurs, where
//	p and q are the numbers of distinct values in a and b.  It is the input
//	to chi-square independence tests, mosaic plots, and association measures.
//
// ✨ Key features:
//   - Fast: strictly typed int64 path, one rank-lookup structure built once
//     and reused for all n elements, then a single O(n + p·q) counting pass
//   - Generic: arbitrary ordered label types via type parameters — the slow,
//     validating twin used for cross-checking and irregular inputs
//   - Two lookup strategies (choose via LookupMode): hash map or binary
//     search over the sorted distinct values
//   - Deterministic: labels always sorted ascending, identical inputs yield
//     identical tables
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/crosstab"
//
//	a := []int64{1, 1, 2, 2}
//	b := []int64{5, 6, 5, 6}
//
//	if err := crosstab.Validate(a, b); err != nil {
//	  // reject malformed input before the fast path
//	}
//	t, err := crosstab.Fast(a, b, nil)
//	// t.Dims() == (2, 2), every cell == 1, t.Total() == 4
//
// Performance:
//
//   - Time:   O(n log p) building labels + O(n) lookups (HashLookup)
//     or O(n log p) lookups (BinarySearch), + O(p·q) counting
//   - Memory: O(p·q) for the table, O(p+q) for the lookup structures
//
// Fast performs no input validation: mismatched lengths are the caller's
// responsibility (use Validate as the wrapping layer). Generic validates.
//
// See example_test.go for worked examples and bench_test.go for the
// fast-vs-generic comparison.
package crosstab
