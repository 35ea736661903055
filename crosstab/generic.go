package crosstab

import (
	"cmp"
	"sort"
)

// TableOf is a contingency table over arbitrary ordered label types —
// the result of the Generic slow path. Storage matches Table: flat
// row-major counts with sorted distinct labels on both axes.
type TableOf[R, C cmp.Ordered] struct {
	rows, cols int
	counts     []int

	// RowLabels are the sorted distinct values of the first sequence.
	RowLabels []R
	// ColLabels are the sorted distinct values of the second sequence.
	ColLabels []C
}

// Dims returns the table dimensions (p rows, q columns).
func (t *TableOf[R, C]) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// At returns the count in cell (i, j).
func (t *TableOf[R, C]) At(i, j int) int {
	return t.counts[i*t.cols+j]
}

// Total returns the sum of all counts.
func (t *TableOf[R, C]) Total() int {
	var sum int
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Generic — reference two-way frequency tabulation over arbitrary ordered
// label types.
//
// Description:
//
//	Generic is the slow, validating twin of Fast behind the same capability
//	("produces a contingency table"). It exists as a distinct function, not
//	as runtime type inspection inside the fast path: callers with int64
//	codes take Fast, everyone else (and every cross-check test) takes
//	Generic.
//
// Algorithm:
//
//	One map-based counting pass over (a[i], b[i]) pairs, then label
//	collection and sorting. No rank precomputation, no linear-bin trick —
//	deliberately plain so it stays an independent oracle for Fast.
//
// Complexity:
//
//	Time   = O(n + p log p + q log q) with map-constant overhead per element
//	Memory = O(p·q) worst case for the pair map + O(p·q) table
//
// Errors:
//   - ErrLengthMismatch — len(a) != len(b).
func Generic[R, C cmp.Ordered](a []R, b []C) (*TableOf[R, C], error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	type pair struct {
		r R
		c C
	}
	pairs := make(map[pair]int, len(a))
	rowSeen := make(map[R]struct{})
	colSeen := make(map[C]struct{})
	for i := range a {
		pairs[pair{a[i], b[i]}]++
		rowSeen[a[i]] = struct{}{}
		colSeen[b[i]] = struct{}{}
	}

	rowLabels := make([]R, 0, len(rowSeen))
	for v := range rowSeen {
		rowLabels = append(rowLabels, v)
	}
	colLabels := make([]C, 0, len(colSeen))
	for v := range colSeen {
		colLabels = append(colLabels, v)
	}
	sort.Slice(rowLabels, func(i, j int) bool { return rowLabels[i] < rowLabels[j] })
	sort.Slice(colLabels, func(i, j int) bool { return colLabels[i] < colLabels[j] })

	rowAt := make(map[R]int, len(rowLabels))
	for i, v := range rowLabels {
		rowAt[v] = i
	}
	colAt := make(map[C]int, len(colLabels))
	for j, v := range colLabels {
		colAt[v] = j
	}

	p, q := len(rowLabels), len(colLabels)
	t := &TableOf[R, C]{
		rows:      p,
		cols:      q,
		counts:    make([]int, p*q),
		RowLabels: rowLabels,
		ColLabels: colLabels,
	}
	for k, n := range pairs {
		t.counts[rowAt[k.r]*q+colAt[k.c]] = n
	}

	return t, nil
}
