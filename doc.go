// Package statkit is a toolbox of small, deterministic statistical kernels —
// each shipped as a strictly typed fast path next to a generic or naive
// reference path, so the two can be benchmarked and cross-checked.
//
// 🚀 What is statkit?
//
//	A collection of the routines that dominate everyday data crunching:
//	  • Cross-tabulation: contingency tables over integer codes (crosstab)
//	  • Chi-square statistics: goodness-of-fit & independence (chisq)
//	  • Lookup / matching: hash-indexed position lookup (match)
//	  • Rolling means: cumulative-sum windows (rollmean)
//	  • Vector arithmetic: elementwise kernels & moments (vec)
//	  • Date parsing: fixed-layout fast paths (dateparse)
//	  • Linear regression: simple & multiple OLS (linreg)
//
// ✨ Why choose statkit?
//
//   - Fast path + reference path – every kernel keeps its slow twin around,
//     so correctness is always one cross-check away
//   - Deterministic – identical inputs yield bitwise-identical outputs
//   - Pure Go – no cgo, no hidden state, no I/O in library packages
//   - Benchmark-ready – per-package benchmarks plus the statbench CLI runner
//
// Under the hood, everything is organized as one package per kernel:
//
//	crosstab/  — p×q contingency tables from paired integer codes
//	chisq/     — Pearson χ² statistic, independence test on tables
//	match/     — reusable hash index, vectorized position matching
//	rollmean/  — rolling means with alignment & partial-window modes
//	vec/       — elementwise float64 kernels and sample moments
//	dateparse/ — YYYY-MM-DD / timestamp fast parsing
//	linreg/    — ordinary least squares, closed-form and normal equations
//
// Quick example:
//
//	a := []int64{1, 1, 2, 2}
//	b := []int64{5, 6, 5, 6}
//	t, _ := crosstab.Fast(a, b, nil) // 2×2 table, every cell == 1
//
// Dive into each package's doc.go for algorithms, complexity and examples,
// and into cmd/statbench for the YAML-driven benchmark suite runner.
//
//	go get github.com/katalvlaran/statkit
package statkit
