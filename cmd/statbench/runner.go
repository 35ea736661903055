package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/statkit/chisq"
	"github.com/katalvlaran/statkit/crosstab"
	"github.com/katalvlaran/statkit/dateparse"
	"github.com/katalvlaran/statkit/internal/synth"
	"github.com/katalvlaran/statkit/linreg"
	"github.com/katalvlaran/statkit/match"
	"github.com/katalvlaran/statkit/rollmean"
	"github.com/katalvlaran/statkit/vec"
)

// caseResult pairs the timing summaries of a case's fast and reference paths.
type caseResult struct {
	Case Case
	Fast synth.DurationStats
	Ref  synth.DurationStats
}

// Speedup is reference mean time over fast mean time; 0 when the fast mean
// is unmeasurably small.
func (r caseResult) Speedup() float64 {
	if r.Fast.Mean <= 0 {
		return 0
	}
	return float64(r.Ref.Mean) / float64(r.Fast.Mean)
}

// runSuite executes every case in order, each on its own derived RNG stream
// so case order and count never change another case's inputs.
func runSuite(s *Suite) ([]caseResult, error) {
	base := synth.RNG(s.Seed)
	out := make([]caseResult, 0, len(s.Cases))
	for i, c := range s.Cases {
		res, err := runCase(c, synth.DeriveRNG(base, uint64(i)+1))
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// measure times fn reps times and reduces the raw timings to best/mean/std.
func measure(reps int, fn func() error) (synth.DurationStats, error) {
	times := make([]time.Duration, reps)
	for i := range times {
		start := time.Now()
		if err := fn(); err != nil {
			return synth.DurationStats{}, err
		}
		times[i] = time.Since(start)
	}
	return synth.SummarizeDurations(times), nil
}

// lookupOptions maps the suite's lookup string onto crosstab options;
// unknown values were rejected at load time.
func lookupOptions(lookup string) *crosstab.Options {
	o := crosstab.DefaultOptions()
	if lookup == "binary" {
		o.Lookup = crosstab.BinarySearch
	}
	return &o
}

// runCase generates the case's inputs once, then times the kernel's fast
// path against its reference twin.
func runCase(c Case, rng *rand.Rand) (caseResult, error) {
	var fast, ref func() error

	switch c.Kernel {
	case kernelCrosstab:
		a := synth.Codes(rng, c.N, c.Distinct)
		b := synth.Codes(rng, c.N, c.Distinct)
		opts := lookupOptions(c.Lookup)
		fast = func() error {
			_, err := crosstab.Fast(a, b, opts)
			return err
		}
		ref = func() error {
			_, err := crosstab.Generic(a, b)
			return err
		}

	case kernelChisq:
		a := synth.Codes(rng, c.N, c.Distinct)
		b := synth.Codes(rng, c.N, c.Distinct)
		opts := lookupOptions(c.Lookup)
		fast = func() error {
			t, err := crosstab.Fast(a, b, opts)
			if err != nil {
				return err
			}
			_, err = chisq.Independence(t, nil)
			return err
		}
		ref = func() error {
			t, err := crosstab.Generic(a, b)
			if err != nil {
				return err
			}
			p, q := t.Dims()
			counts := make([]int, p*q)
			for i := 0; i < p; i++ {
				for j := 0; j < q; j++ {
					counts[i*q+j] = t.At(i, j)
				}
			}
			tbl, err := crosstab.New(t.RowLabels, t.ColLabels, counts)
			if err != nil {
				return err
			}
			_, err = chisq.Independence(tbl, nil)
			return err
		}

	case kernelMatch:
		table := synth.Codes(rng, c.N/10+1, c.Distinct)
		x := synth.Codes(rng, c.N, c.Distinct)
		fast = func() error {
			match.Match(x, table)
			return nil
		}
		ref = func() error {
			match.Linear(x, table)
			return nil
		}

	case kernelRollmean:
		x := synth.Floats(rng, c.N)
		fast = func() error {
			_, err := rollmean.Roll(x, c.Window, nil)
			return err
		}
		ref = func() error {
			_, err := rollmean.Naive(x, c.Window, nil)
			return err
		}

	case kernelVec:
		x := synth.Floats(rng, c.N)
		y := synth.Floats(rng, c.N)
		dst := make([]float64, c.N)
		fast = func() error {
			if err := vec.AXPYTo(dst, 2.5, x, y); err != nil {
				return err
			}
			_, err := vec.Dot(dst, x)
			return err
		}
		ref = func() error {
			z, err := vec.AXPY(2.5, x, y)
			if err != nil {
				return err
			}
			_, err = vec.Dot(z, x)
			return err
		}

	case kernelDateparse:
		ss := synth.DateStrings(rng, c.N)
		fast = func() error {
			for _, s := range ss {
				if _, err := dateparse.Date(s); err != nil {
					return err
				}
			}
			return nil
		}
		ref = func() error {
			for _, s := range ss {
				if _, err := dateparse.Generic(s, dateparse.LayoutDate); err != nil {
					return err
				}
			}
			return nil
		}

	case kernelLinreg:
		x := synth.Floats(rng, c.N)
		noise := synth.Floats(rng, c.N)
		y := make([]float64, c.N)
		rows := make([][]float64, c.N)
		for i := range y {
			y[i] = 0.5 + 1.4*x[i] + 0.1*noise[i]
			rows[i] = []float64{x[i]}
		}
		fast = func() error {
			_, err := linreg.Fit(x, y)
			return err
		}
		ref = func() error {
			_, err := linreg.FitMultiple(rows, y, nil)
			return err
		}

	default:
		return caseResult{}, fmt.Errorf("%w: unknown kernel %q", ErrBadSuite, c.Kernel)
	}

	res := caseResult{Case: c}
	var err error
	if res.Fast, err = measure(c.Reps, fast); err != nil {
		return caseResult{}, err
	}
	if res.Ref, err = measure(c.Reps, ref); err != nil {
		return caseResult{}, err
	}
	return res, nil
}
