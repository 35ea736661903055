// Package dateparse parses fixed-layout dates and timestamps on a
// hand-rolled fast path, with stdlib time.Parse kept as the generic twin.
//
// 🚀 Why a fast path?
//
//	Bulk ingestion spends a surprising share of its time inside layout
//	interpretation. When every record carries the same fixed layout
//	(YYYY-MM-DD or YYYY-MM-DD HH:MM:SS), decoding digits directly — no
//	layout scanning, no allocations — is several times faster than the
//	general-purpose parser.
//
// ✨ Key features:
//   - Date: YYYY-MM-DD → UTC midnight, full calendar validation
//     (month range, day-per-month, leap years)
//   - DateTime: YYYY-MM-DD HH:MM:SS (space or 'T' separator) → UTC
//   - Dates: batch helper failing fast on the first malformed entry
//   - Generic: thin time.Parse wrapper, the slow path cross-checked and
//     benchmarked against
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/dateparse"
//
//	d, err := dateparse.Date("2024-02-29")         // leap day, ok
//	ts, err := dateparse.DateTime("2024-02-29 13:37:00")
//
// Errors wrap ErrBadFormat with the offending input; match via errors.Is.
//
// Performance: O(1) per value, zero allocations on the fast path.
package dateparse
