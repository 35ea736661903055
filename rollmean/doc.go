// Package rollmean computes rolling (moving-window) means over float64
// series, with a single-pass cumulative-sum fast path and a naive re-scan
// reference path.
//
// 🚀 What is a rolling mean?
//
//	For each position of a length-w window slid across the series, the mean
//	of the covered elements. It is the workhorse smoother for sensor
//	streams, financial series and trend extraction.
//
// ✨ Key features:
//   - Fast: one prefix-sum pass, then O(1) per output element — O(n) total,
//     independent of window size
//   - Naive: the per-window re-scan twin, O(n·w), kept for cross-checks and
//     benchmarks
//   - Alignment: Left, Center (default) or Right window placement
//   - Partial windows: either NaN outside full coverage (default) or means
//     over the available elements at the edges (Partial=true)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/rollmean"
//
//	opts := rollmean.DefaultOptions()
//	opts.Align = rollmean.Right
//	opts.Partial = true
//
//	smoothed, err := rollmean.Roll(series, 7, &opts)
//
// Output always has the input's length; positions without a full window are
// NaN unless Partial is set. For even windows under Center alignment the
// extra element falls on the trailing side.
//
// Performance:
//
//   - Roll:  O(n) time, O(n) memory for the prefix sums
//   - Naive: O(n·w) time, O(1) extra memory
package rollmean
