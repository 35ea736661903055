// Package match resolves values to their positions within a lookup table —
// the vectorized "where does each x sit in table?" primitive — with a hash
// index built once and reused across all lookups.
//
// 🚀 What is matching?
//
//	Given a query slice x and a lookup table, matching returns for every
//	x[i] the position of its first occurrence in the table, or NoMatch.
//	It underlies joins, recoding, and factor-level alignment.
//
// ✨ Key features:
//   - Index: the reusable value→position structure, built in O(t), probed
//     in amortized O(1) — build once, match many query slices against it
//   - Match: one-shot convenience that builds an Index internally
//   - Linear: the naive O(n·t) re-scan twin, kept for benchmarking
//   - First-occurrence semantics: duplicated table values resolve to the
//     earliest position, matching the usual lookup contract
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/match"
//
//	table := []int64{10, 20, 30}
//	ix := match.NewIndex(table)
//	pos, ok := ix.Lookup(20)        // 1, true
//
//	positions := match.Match([]int64{30, 5, 10}, table)
//	// [2, match.NoMatch, 0]
//
// Performance:
//
//   - Index build: O(t) time, O(t) memory
//   - Per lookup:  amortized O(1) versus O(t) for Linear
//
// Positions are 0-based; absent values yield NoMatch (−1).
package match
