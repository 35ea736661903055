// Package chisq computes Pearson chi-square statistics: the raw
// goodness-of-fit statistic over observed/expected counts, and the test of
// independence on a contingency table.
//
// 🚀 What does it measure?
//
//	The chi-square statistic Σ (O−E)²/E quantifies how far observed counts
//	deviate from the counts expected under a hypothesis. For a p×q
//	contingency table, the independence test takes expected cell counts
//	from the marginal products (row·col/total) with (p−1)·(q−1) degrees of
//	freedom.
//
// ✨ Key features:
//   - Statistic: the bare Σ (O−E)²/E kernel for pre-computed expectations
//   - Independence: marginals, expected counts and dof from a crosstab.Table
//   - OfSequences: paired code sequences straight to a test result, with the
//     table built by the crosstab fast path
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/statkit/chisq"
//	  "github.com/katalvlaran/statkit/crosstab"
//	)
//
//	t, _ := crosstab.Fast(a, b, nil)
//	res, err := chisq.Independence(t, nil)
//	fmt.Println(res.Stat, res.DoF)
//
// The package reports the statistic and degrees of freedom only; p-value
// lookup is left to the caller's distribution tables.
//
// Performance: O(p·q) time and memory over the table.
package chisq
