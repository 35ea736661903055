package rollmean_test

import (
	"fmt"

	"github.com/katalvlaran/statkit/rollmean"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRoll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Smooth a short sensor trace with a centered 3-point window, letting the
//	edges average whatever is available (Partial=true).
//
// Complexity: O(n) time, O(n) memory.
func ExampleRoll() {
	trace := []float64{1, 2, 3, 4, 5}

	opts := rollmean.DefaultOptions()
	opts.Partial = true

	out, err := rollmean.Roll(trace, 3, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, v := range out {
		fmt.Printf("%.1f ", v)
	}
	fmt.Println()
	// Output:
	// 1.5 2.0 3.0 4.0 4.5
}
