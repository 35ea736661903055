package chisq

import "github.com/katalvlaran/statkit/crosstab"

// Statistic computes the raw Pearson chi-square statistic Σ (O−E)²/E over
// parallel observed and expected count slices.
//
// Complexity: O(n) time, O(1) memory.
//
// Errors:
//   - ErrEmptyInput — no counts supplied.
//   - ErrLengthMismatch — len(observed) != len(expected).
//   - ErrNonPositiveExpected — some expected[i] ≤ 0.
func Statistic(observed, expected []float64) (float64, error) {
	if len(observed) == 0 {
		return 0, ErrEmptyInput
	}
	if len(observed) != len(expected) {
		return 0, ErrLengthMismatch
	}

	var stat float64
	for i := range observed {
		e := expected[i]
		if e <= 0 {
			return 0, ErrNonPositiveExpected
		}
		d := observed[i] - e
		stat += d * d / e
	}

	return stat, nil
}

// Independence — Pearson chi-square test of independence on a contingency
// table.
//
// Algorithm Outline:
//  1. Compute row sums, column sums and the grand total from the table.
//  2. Expected cell count E[i,j] = rowSum[i]·colSum[j]/total.
//  3. Stat = Σ (O[i,j] − E[i,j])²/E[i,j]; DoF = (p−1)·(q−1).
//
// Complexity: O(p·q) time, O(p+q) memory (plus O(p·q) if expected counts
// are requested).
//
// Errors:
//   - ErrEmptyTable — nil table, zero dimensions, or zero total.
//   - ErrZeroMarginal — some row or column sums to zero; the test is
//     undefined because its expected counts vanish.
func Independence(t *crosstab.Table, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if t == nil {
		return Result{}, ErrEmptyTable
	}
	p, q := t.Dims()
	if p == 0 || q == 0 {
		return Result{}, ErrEmptyTable
	}

	// Marginals in one pass over the cells.
	rowSums := make([]float64, p)
	colSums := make([]float64, q)
	var total float64
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			c := float64(t.At(i, j))
			rowSums[i] += c
			colSums[j] += c
			total += c
		}
	}
	if total == 0 {
		return Result{}, ErrEmptyTable
	}
	for _, s := range rowSums {
		if s == 0 {
			return Result{}, ErrZeroMarginal
		}
	}
	for _, s := range colSums {
		if s == 0 {
			return Result{}, ErrZeroMarginal
		}
	}

	res := Result{DoF: (p - 1) * (q - 1)}
	if o.ReturnExpected {
		res.Expected = make([]float64, p*q)
	}
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			e := rowSums[i] * colSums[j] / total
			d := float64(t.At(i, j)) - e
			res.Stat += d * d / e
			if res.Expected != nil {
				res.Expected[i*q+j] = e
			}
		}
	}

	return res, nil
}

// OfSequences runs the independence test directly on two paired int64 code
// sequences: the contingency table is built with the crosstab fast path,
// then handed to Independence. The inputs must satisfy crosstab.Validate.
//
// Complexity: O(n + p·q) time.
func OfSequences(a, b []int64) (Result, error) {
	t, err := crosstab.Fast(a, b, nil)
	if err != nil {
		return Result{}, err
	}
	return Independence(t, nil)
}
