package dateparse_test

import (
	"fmt"

	"github.com/katalvlaran/statkit/dateparse"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decode a fixed-layout date column during bulk ingestion; malformed
//	entries surface ErrBadFormat with the offending input.
//
// Complexity: O(1) per value.
func ExampleDate() {
	d, err := dateparse.Date("2024-02-29")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d.Format("Mon 2006-01-02"))

	_, err = dateparse.Date("2023-02-29")
	fmt.Println(err)
	// Output:
	// Thu 2024-02-29
	// dateparse: malformed date: "2023-02-29"
}
