package match

// NoMatch is the position reported for query values absent from the table.
const NoMatch = -1

// Index is a reusable value→position lookup structure over an int64 table.
// Build it once with NewIndex and probe it for any number of queries; this
// single build is what beats re-scanning the table per query element.
type Index struct {
	pos map[int64]int
}

// NewIndex builds the lookup index for table. Duplicated values keep their
// first position (first-occurrence semantics).
//
// Complexity: O(t) time and memory, t = len(table).
func NewIndex(table []int64) *Index {
	pos := make(map[int64]int, len(table))
	for i, v := range table {
		if _, ok := pos[v]; !ok {
			pos[v] = i
		}
	}
	return &Index{pos: pos}
}

// Lookup returns the 0-based first-occurrence position of v in the indexed
// table, and whether v is present.
//
// Complexity: amortized O(1).
func (ix *Index) Lookup(v int64) (pos int, ok bool) {
	pos, ok = ix.pos[v]
	return pos, ok
}

// Len returns the number of distinct values in the indexed table.
func (ix *Index) Len() int {
	return len(ix.pos)
}

// Match returns, for every x[i], the 0-based position of its first
// occurrence in table, or NoMatch when absent. The index is built once and
// reused for all len(x) lookups.
//
// Complexity: O(t + n) time versus O(n·t) for Linear.
func Match(x, table []int64) []int {
	ix := NewIndex(table)
	out := make([]int, len(x))
	for i, v := range x {
		if p, ok := ix.Lookup(v); ok {
			out[i] = p
		} else {
			out[i] = NoMatch
		}
	}
	return out
}

// Contains reports, for every x[i], whether it occurs anywhere in table.
//
// Complexity: O(t + n) time.
func Contains(x, table []int64) []bool {
	ix := NewIndex(table)
	out := make([]bool, len(x))
	for i, v := range x {
		_, out[i] = ix.Lookup(v)
	}
	return out
}

// Linear is the naive reference twin of Match: a full table re-scan per
// query element. It exists for cross-checks and benchmarks, not for use.
//
// Complexity: O(n·t) time.
func Linear(x, table []int64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		out[i] = NoMatch
		for j, w := range table {
			if w == v {
				out[i] = j
				break
			}
		}
	}
	return out
}
