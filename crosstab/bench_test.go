package crosstab_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/statkit/crosstab"
)

// benchmarkFast runs the fast path on n random codes drawn from k distinct
// values per side, using the given lookup mode. Setup is excluded from
// timing and errors abort the benchmark.
func benchmarkFast(b *testing.B, n int, k int64, mode crosstab.LookupMode) {
	rng := rand.New(rand.NewSource(1))
	a := randomCodes(rng, n, k)
	bb := randomCodes(rng, n, k)
	opts := crosstab.DefaultOptions()
	opts.Lookup = mode

	b.ResetTimer() // ignore input generation
	for i := 0; i < b.N; i++ {
		if _, err := crosstab.Fast(a, bb, &opts); err != nil {
			b.Fatalf("Fast failed: %v", err)
		}
	}
}

// benchmarkGeneric runs the reference path on the same input shape.
func benchmarkGeneric(b *testing.B, n int, k int64) {
	rng := rand.New(rand.NewSource(1))
	a := randomCodes(rng, n, k)
	bb := randomCodes(rng, n, k)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crosstab.Generic(a, bb); err != nil {
			b.Fatalf("Generic failed: %v", err)
		}
	}
}

// BenchmarkFast_HashSmall benchmarks HashLookup on 1k elements, 10 levels.
func BenchmarkFast_HashSmall(b *testing.B) {
	benchmarkFast(b, 1_000, 10, crosstab.HashLookup)
}

// BenchmarkFast_HashLarge benchmarks HashLookup on 100k elements, 100 levels.
func BenchmarkFast_HashLarge(b *testing.B) {
	benchmarkFast(b, 100_000, 100, crosstab.HashLookup)
}

// BenchmarkFast_BinarySmall benchmarks BinarySearch on 1k elements, 10 levels.
func BenchmarkFast_BinarySmall(b *testing.B) {
	benchmarkFast(b, 1_000, 10, crosstab.BinarySearch)
}

// BenchmarkFast_BinaryLarge benchmarks BinarySearch on 100k elements, 100 levels.
func BenchmarkFast_BinaryLarge(b *testing.B) {
	benchmarkFast(b, 100_000, 100, crosstab.BinarySearch)
}

// BenchmarkGeneric_Small benchmarks the reference path on 1k elements.
func BenchmarkGeneric_Small(b *testing.B) {
	benchmarkGeneric(b, 1_000, 10)
}

// BenchmarkGeneric_Large benchmarks the reference path on 100k elements.
func BenchmarkGeneric_Large(b *testing.B) {
	benchmarkGeneric(b, 100_000, 100)
}
