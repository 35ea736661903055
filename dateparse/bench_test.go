package dateparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/statkit/dateparse"
)

// newBenchDates returns n deterministic valid YYYY-MM-DD strings.
func newBenchDates(n int) []string {
	rng := rand.New(rand.NewSource(1))
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%04d-%02d-%02d", 1900+rng.Intn(300), 1+rng.Intn(12), 1+rng.Intn(28))
	}
	return out
}

// BenchmarkDate_Fast benchmarks the hand-rolled path over 10k inputs.
func BenchmarkDate_Fast(b *testing.B) {
	inputs := newBenchDates(10_000)

	b.ResetTimer() // ignore input generation
	for i := 0; i < b.N; i++ {
		for _, s := range inputs {
			if _, err := dateparse.Date(s); err != nil {
				b.Fatalf("Date failed: %v", err)
			}
		}
	}
}

// BenchmarkDate_Generic benchmarks stdlib time.Parse on the same inputs.
func BenchmarkDate_Generic(b *testing.B) {
	inputs := newBenchDates(10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range inputs {
			if _, err := dateparse.Generic(s, dateparse.LayoutDate); err != nil {
				b.Fatalf("Generic failed: %v", err)
			}
		}
	}
}

// BenchmarkDateTime_Fast benchmarks the timestamp fast path.
func BenchmarkDateTime_Fast(b *testing.B) {
	const in = "2024-02-29 13:37:05"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dateparse.DateTime(in); err != nil {
			b.Fatalf("DateTime failed: %v", err)
		}
	}
}
