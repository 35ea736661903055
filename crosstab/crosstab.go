package crosstab

import "sort"

// Fast — pairwise tabulation of two int64 code sequences.
//
// Description:
//
//	Fast builds the same contingency table a generic two-way frequency
//	routine would, restricted to the no-missing-values, two-integer-vector
//	case and optimized for speed. The rank-lookup structure is built once
//	per side and reused for all n elements — the whole point versus a naive
//	per-element linear re-scan, which would cost O(n·p).
//
// Algorithm Outline:
//  1. uniqueA = sort(distinct(a)), uniqueB = sort(distinct(b));
//     p = len(uniqueA), q = len(uniqueB).
//  2. Build one rank-lookup structure per side (hash map or binary search
//     over the sorted slice, per Options.Lookup). Ranks are 1-based.
//  3. For each element pair, combine ranks into one linear bin index:
//     bin = rankA + p·(rankB − 1), bin ∈ [1, p·q].
//  4. Count bin occurrences with a single array increment per element —
//     O(n + p·q), no comparison-sort grouping.
//  5. Reshape the bin counts into the row-major p×q Table and attach
//     uniqueA/uniqueB as labels.
//
// Complexity:
//
//	Time   = O(n + p log p + q log q) with HashLookup,
//	         O(n·(log p + log q) + p log p + q log q) with BinarySearch
//	Memory = O(p·q) table + O(p+q) lookup structures
//
// Errors:
//   - ErrLookupMode — Options carries an unknown LookupMode.
//
// Fast performs no input validation (explicit trade-off: speed over
// robustness). Mismatched lengths or otherwise malformed input must be
// rejected by a wrapping layer — see Validate.
func Fast(a, b []int64, opts *Options) (*Table, error) {
	mode := HashLookup
	if opts != nil {
		mode = opts.Lookup
	}
	if mode != HashLookup && mode != BinarySearch {
		return nil, ErrLookupMode
	}

	uniqueA := sortedDistinct(a)
	uniqueB := sortedDistinct(b)
	p, q := len(uniqueA), len(uniqueB)

	t := &Table{
		rows:      p,
		cols:      q,
		counts:    make([]int, p*q),
		RowLabels: uniqueA,
		ColLabels: uniqueB,
	}
	if p == 0 || q == 0 {
		return t, nil
	}

	// Counting pass over linear bins; bins are 1-based and column-major
	// (bin = rankA + p·(rankB−1)), stored here at offset bin−1.
	bins := make([]int, p*q)
	if mode == HashLookup {
		rankA := hashRanks(uniqueA)
		rankB := hashRanks(uniqueB)
		for i := range a {
			bin := rankA[a[i]] + p*(rankB[b[i]]-1)
			bins[bin-1]++
		}
	} else {
		for i := range a {
			bin := searchRank(uniqueA, a[i]) + p*(searchRank(uniqueB, b[i])-1)
			bins[bin-1]++
		}
	}

	// Reshape column-major bins into the row-major table storage.
	for j := 0; j < q; j++ {
		base := j * p
		for i := 0; i < p; i++ {
			t.counts[i*q+j] = bins[base+i]
		}
	}

	return t, nil
}

// Validate is the wrapping validation layer for the fast path: it rejects
// input Fast itself is not expected to survive. Today that is a length
// mismatch; missing-value and type checks live with the caller's decoding.
//
// Returns ErrLengthMismatch when len(a) != len(b), nil otherwise.
func Validate(a, b []int64) error {
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	return nil
}

// sortedDistinct returns the sorted distinct values of xs.
// Complexity: O(n) collection + O(p log p) sort.
func sortedDistinct(xs []int64) []int64 {
	seen := make(map[int64]struct{}, len(xs))
	u := make([]int64, 0, 16)
	for _, v := range xs {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			u = append(u, v)
		}
	}
	sort.Slice(u, func(i, j int) bool { return u[i] < u[j] })
	return u
}

// hashRanks builds the value→rank map for a sorted distinct slice.
// Ranks are 1-based. Built once, probed n times.
func hashRanks(unique []int64) map[int64]int {
	ranks := make(map[int64]int, len(unique))
	for i, v := range unique {
		ranks[v] = i + 1
	}
	return ranks
}

// searchRank returns the 1-based rank of v within the sorted distinct
// slice via binary search. v must be present (it came from the same input
// the slice was distilled from).
func searchRank(unique []int64, v int64) int {
	return sort.Search(len(unique), func(i int) bool { return unique[i] >= v }) + 1
}
