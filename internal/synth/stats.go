package synth

import (
	"math"
	"time"
)

// DurationStats summarizes repeated timing measurements of one case.
type DurationStats struct {
	N    int
	Best time.Duration
	Mean time.Duration
	Std  time.Duration
}

// SummarizeDurations reduces raw per-repetition timings to best/mean/std.
// Std uses the sample (n−1) denominator and is zero for fewer than two
// measurements.
//
// Complexity: O(n).
func SummarizeDurations(values []time.Duration) DurationStats {
	s := DurationStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	var sum float64
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += float64(v)
	}
	mean := sum / float64(s.N)

	var variance float64
	if s.N >= 2 {
		for _, v := range values {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = time.Duration(mean)
	s.Std = time.Duration(math.Sqrt(variance))
	return s
}
