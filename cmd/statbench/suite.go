package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kernel names accepted in suite files.
const (
	kernelCrosstab  = "crosstab"
	kernelChisq     = "chisq"
	kernelMatch     = "match"
	kernelRollmean  = "rollmean"
	kernelVec       = "vec"
	kernelDateparse = "dateparse"
	kernelLinreg    = "linreg"
)

// ErrBadSuite indicates a suite file that parsed but fails validation.
var ErrBadSuite = errors.New("statbench: invalid suite")

// Case describes one benchmarked scenario: a kernel plus its input shape.
type Case struct {
	// Name labels the row in the report; defaults to the kernel name.
	Name string `yaml:"name"`

	// Kernel selects what is measured (crosstab, chisq, match, rollmean,
	// vec, dateparse, linreg).
	Kernel string `yaml:"kernel"`

	// N is the input length.
	N int `yaml:"n"`

	// Distinct bounds the number of code levels (crosstab, chisq, match).
	Distinct int64 `yaml:"distinct"`

	// Window is the rolling-mean window (rollmean only).
	Window int `yaml:"window"`

	// Lookup picks the crosstab rank-lookup mode: "hash" (default) or
	// "binary" (crosstab and chisq only).
	Lookup string `yaml:"lookup"`

	// Reps overrides the suite-wide repetition count for this case.
	Reps int `yaml:"reps"`
}

// Suite is the YAML-configurable benchmark plan.
type Suite struct {
	// Seed feeds the deterministic input generator; 0 means the fixed
	// default stream.
	Seed int64 `yaml:"seed"`

	// Reps is the per-case repetition count (default 10).
	Reps int `yaml:"reps"`

	// Cases lists the scenarios to run, in order.
	Cases []Case `yaml:"cases"`
}

// LoadSuite reads and validates a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load suite: %w", err)
	}
	var s Suite
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("load suite: %w", err)
	}
	if err = s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSuite returns the built-in plan used when no suite file is given:
// one moderate case per kernel.
func DefaultSuite() *Suite {
	return &Suite{
		Reps: 10,
		Cases: []Case{
			{Name: "crosstab-50k-hash", Kernel: kernelCrosstab, N: 50_000, Distinct: 100},
			{Name: "crosstab-50k-binary", Kernel: kernelCrosstab, N: 50_000, Distinct: 100, Lookup: "binary"},
			{Name: "chisq-50k", Kernel: kernelChisq, N: 50_000, Distinct: 20},
			{Name: "match-20k", Kernel: kernelMatch, N: 20_000, Distinct: 2_000},
			{Name: "rollmean-20k", Kernel: kernelRollmean, N: 20_000, Window: 64},
			{Name: "vec-100k", Kernel: kernelVec, N: 100_000},
			{Name: "dateparse-20k", Kernel: kernelDateparse, N: 20_000},
			{Name: "linreg-20k", Kernel: kernelLinreg, N: 20_000},
		},
	}
}

// validate normalizes defaults and rejects malformed cases.
func (s *Suite) validate() error {
	if s.Reps <= 0 {
		s.Reps = 10
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrBadSuite)
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		switch c.Kernel {
		case kernelCrosstab, kernelChisq, kernelMatch, kernelRollmean,
			kernelVec, kernelDateparse, kernelLinreg:
		default:
			return fmt.Errorf("%w: case %d: unknown kernel %q", ErrBadSuite, i, c.Kernel)
		}
		if c.Name == "" {
			c.Name = c.Kernel
		}
		if c.N <= 0 {
			return fmt.Errorf("%w: case %q: n must be positive", ErrBadSuite, c.Name)
		}
		if c.Distinct <= 0 {
			c.Distinct = 10
		}
		if c.Window <= 0 {
			c.Window = 16
		}
		switch c.Lookup {
		case "", "hash", "binary":
		default:
			return fmt.Errorf("%w: case %q: unknown lookup %q", ErrBadSuite, c.Name, c.Lookup)
		}
		if c.Reps <= 0 {
			c.Reps = s.Reps
		}
	}
	return nil
}
