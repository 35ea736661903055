package rollmean

import "math"

// Roll — rolling mean via one cumulative-sum pass.
//
// Description:
//
//	Roll computes the mean of a length-w window slid across x. Instead of
//	re-summing every window (O(n·w)), it builds prefix sums once and reads
//	each window sum as a subtraction — O(n) total regardless of w.
//
// Algorithm Outline:
//  1. Build prefix sums s, where s[k] = x[0] + … + x[k−1], s[0] = 0.
//  2. For each output position i, derive the window span [lo, hi) from the
//     alignment; windowSum = s[hi] − s[lo].
//  3. Full window inside [0, n): mean = windowSum/w. Otherwise NaN, or —
//     with Partial — the mean over the clamped span.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the prefix sums + O(n) output
//
// Errors:
//   - ErrWindowSize — window < 1.
//   - ErrAlignment  — Options carries an unknown Alignment.
//
// A window larger than the series yields all-NaN output (or all-partial
// means with Partial=true); it is not an error.
func Roll(x []float64, window int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if window < 1 {
		return nil, ErrWindowSize
	}
	if o.Align != Left && o.Align != Center && o.Align != Right {
		return nil, ErrAlignment
	}

	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	// Prefix sums: s[k] = sum of x[:k].
	s := make([]float64, n+1)
	for i, v := range x {
		s[i+1] = s[i] + v
	}

	for i := 0; i < n; i++ {
		lo, hi := span(i, window, o.Align)
		if lo >= 0 && hi <= n {
			out[i] = (s[hi] - s[lo]) / float64(window)
			continue
		}
		if !o.Partial {
			out[i] = math.NaN()
			continue
		}
		clo, chi := lo, hi
		if clo < 0 {
			clo = 0
		}
		if chi > n {
			chi = n
		}
		out[i] = (s[chi] - s[clo]) / float64(chi-clo)
	}

	return out, nil
}

// Naive is the reference twin of Roll: every window is re-summed from
// scratch. Same alignment and partial-window semantics, O(n·w) time. It
// exists for cross-checks and benchmarks.
func Naive(x []float64, window int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if window < 1 {
		return nil, ErrWindowSize
	}
	if o.Align != Left && o.Align != Center && o.Align != Right {
		return nil, ErrAlignment
	}

	n := len(x)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo, hi := span(i, window, o.Align)
		if (lo < 0 || hi > n) && !o.Partial {
			out[i] = math.NaN()
			continue
		}
		if lo < 0 {
			lo = 0
		}
		if hi > n {
			hi = n
		}
		var sum float64
		for k := lo; k < hi; k++ {
			sum += x[k]
		}
		out[i] = sum / float64(hi-lo)
	}

	return out, nil
}

// span returns the half-open window [lo, hi) for output position i.
// Center places the extra element of an even window on the trailing side.
func span(i, window int, align Alignment) (lo, hi int) {
	switch align {
	case Left:
		lo = i
	case Right:
		lo = i - window + 1
	default: // Center
		lo = i - (window-1)/2
	}
	return lo, lo + window
}
