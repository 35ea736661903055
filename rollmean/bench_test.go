package rollmean_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/statkit/rollmean"
)

// benchmarkRoll times fn on n normal deviates with the given window.
func benchmarkRoll(b *testing.B, n, window int,
	fn func([]float64, int, *rollmean.Options) ([]float64, error)) {
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	opts := rollmean.DefaultOptions()

	b.ResetTimer() // ignore input generation
	for i := 0; i < b.N; i++ {
		if _, err := fn(x, window, &opts); err != nil {
			b.Fatalf("rolling mean failed: %v", err)
		}
	}
}

// BenchmarkRoll_10kW8 benchmarks the cumulative-sum path, 10k points, w=8.
func BenchmarkRoll_10kW8(b *testing.B) {
	benchmarkRoll(b, 10_000, 8, rollmean.Roll)
}

// BenchmarkNaive_10kW8 benchmarks the re-scan path on the same shape.
func BenchmarkNaive_10kW8(b *testing.B) {
	benchmarkRoll(b, 10_000, 8, rollmean.Naive)
}

// BenchmarkRoll_10kW512 shows the fast path is window-size independent.
func BenchmarkRoll_10kW512(b *testing.B) {
	benchmarkRoll(b, 10_000, 512, rollmean.Roll)
}

// BenchmarkNaive_10kW512 shows the naive path degrading with window size.
func BenchmarkNaive_10kW512(b *testing.B) {
	benchmarkRoll(b, 10_000, 512, rollmean.Naive)
}
