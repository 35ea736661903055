// Package vec provides elementwise float64 vector kernels and sample
// moments: the tight loops every other statkit package (and its
// benchmarks) leans on.
//
// 🚀 What's inside?
//
//	Arithmetic kernels: Add, Sub, Mul, Scale, AXPY, Dot — plus in-place
//	variants (AddTo, ScaleTo, AXPYTo) for allocation-free hot loops.
//	Sample moments: Sum, Mean, Variance (n−1 denominator), Std.
//
// ✨ Key features:
//   - Deterministic single-pass loops, fixed 0→n−1 order
//   - Allocating and in-place variants of every arithmetic kernel
//   - Explicit sentinel errors, no panics on user input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/vec"
//
//	z, err := vec.AXPY(2.0, x, y)      // z = 2x + y, newly allocated
//	err = vec.AXPYTo(dst, 2.0, x, y)   // dst = 2x + y, no allocation
//
//	m, err := vec.Mean(x)
//	v, err := vec.Variance(x)          // sample variance, n−1
//
// Performance: every kernel is O(n) time; allocating variants add one
// O(n) output slice, *To variants add none.
package vec
