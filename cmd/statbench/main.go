// statbench - compare the statkit fast kernels against their reference
// twins on synthetic inputs and render the timings side by side.
//
// Usage:
//
//	statbench run                      # built-in suite, one case per kernel
//	statbench run --suite bench.yaml   # custom YAML suite
//	statbench run --reps 25 --seed 42
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "statbench",
		Short:         "Benchmark statkit's fast kernels against their reference twins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		suitePath string
		reps      int
		seed      int64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite and render a comparison table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := DefaultSuite()
			if suitePath != "" {
				var err error
				if suite, err = LoadSuite(suitePath); err != nil {
					return err
				}
			}
			if err := suite.validate(); err != nil {
				return err
			}
			// Flag overrides win over both the file and the defaults.
			if reps > 0 {
				for i := range suite.Cases {
					suite.Cases[i].Reps = reps
				}
			}
			if seed != 0 {
				suite.Seed = seed
			}

			pterm.Printf("running %s over %s cases (seed %s)\n",
				pterm.LightGreen(len(suite.Cases)),
				pterm.Yellow("fast-vs-reference"),
				pterm.Gray(suite.Seed))
			results, err := runSuite(suite)
			if err != nil {
				return err
			}
			return renderResults(results)
		},
	}
	cmd.Flags().StringVarP(&suitePath, "suite", "f", "", "YAML suite file (built-in suite when omitted)")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "override repetitions for every case")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "override the input generator seed")
	return cmd
}

// renderResults prints one row per case: fast timings, reference timings and
// the mean-over-mean speedup.
func renderResults(results []caseResult) error {
	data := pterm.TableData{
		{"Case", "Kernel", "N", "Reps", "Fast best", "Fast mean ± std", "Ref mean", "Speedup"},
	}
	for _, r := range results {
		data = append(data, []string{
			r.Case.Name,
			r.Case.Kernel,
			fmt.Sprintf("%d", r.Case.N),
			fmt.Sprintf("%d", r.Case.Reps),
			r.Fast.Best.String(),
			fmt.Sprintf("%v ± %v", r.Fast.Mean, r.Fast.Std),
			r.Ref.Mean.String(),
			pterm.LightGreen(fmt.Sprintf("%.1fx", r.Speedup())),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
