package vec_test

import (
	"fmt"

	"github.com/katalvlaran/statkit/vec"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAXPY
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Blend a baseline signal with twice a correction vector — the classic
//	alpha·x + y update.
//
// Complexity: O(n) time.
func ExampleAXPY() {
	correction := []float64{0.5, -0.5, 1}
	baseline := []float64{10, 10, 10}

	out, err := vec.AXPY(2, correction, baseline)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [11 9 12]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMean
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Summarize a small sample with its mean and sample standard deviation.
//
// Complexity: O(n) time.
func ExampleMean() {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	m, _ := vec.Mean(x)
	s, _ := vec.Std(x)
	fmt.Printf("mean=%.2f std=%.2f\n", m, s)
	// Output:
	// mean=5.00 std=2.14
}
