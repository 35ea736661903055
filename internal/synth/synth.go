// Package synth - deterministic synthetic inputs shared by benchmarks and
// the statbench runner.
//
// This file centralizes random generation for every kernel exercised by the
// suite runner.
//
// Goals:
//   - Determinism: same seed ⇒ identical inputs across platforms and runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; generators accept any non-negative sizes.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveRNG to create independent streams per worker.
package synth

import (
	"fmt"
	"math/rand"
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// RNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche, so derived substreams stay
// uncorrelated even for adjacent stream ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer constants; strong bit diffusion.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil the defaultSeed policy applies.
// base.Int63() is consumed once to decorrelate consecutive derivations.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Codes draws n int64 codes uniformly from [0, distinct). distinct < 1 is
// treated as 1 so the result is always well-formed.
//
// Complexity: O(n).
func Codes(rng *rand.Rand, n int, distinct int64) []int64 {
	if distinct < 1 {
		distinct = 1
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(distinct)
	}
	return out
}

// Floats draws n standard normal deviates.
//
// Complexity: O(n).
func Floats(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

// DateStrings draws n valid YYYY-MM-DD strings spanning 1900–2199.
// Days stay within 1–28 so every string is calendar-valid.
//
// Complexity: O(n).
func DateStrings(rng *rand.Rand, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%04d-%02d-%02d",
			1900+rng.Intn(300), 1+rng.Intn(12), 1+rng.Intn(28))
	}
	return out
}
