// Package rollmean defines options, alignment modes and error sentinels
// for rolling means.
package rollmean

import "errors"

// Sentinel errors for rolling-mean computation.
var (
	// ErrWindowSize is returned when the window is smaller than 1.
	ErrWindowSize = errors.New("rollmean: window must be at least 1")

	// ErrAlignment is returned when Options carries an unknown Alignment.
	ErrAlignment = errors.New("rollmean: unknown alignment")
)

// Alignment controls where the window sits relative to each output position.
//
//   - Left   — the window starts at the position: covers [i, i+w).
//   - Center — the window straddles the position: covers [i−(w−1)/2, …+w).
//     For even w the extra element falls on the trailing side.
//   - Right  — the window ends at the position: covers (i−w, i].
type Alignment int

const (
	// Left alignment: output position carries the mean of itself and the
	// following w−1 elements.
	Left Alignment = iota

	// Center alignment: output position carries the mean of the window
	// straddling it (default).
	Center

	// Right alignment: output position carries the mean of itself and the
	// preceding w−1 elements.
	Right
)

// Options configures rolling-mean computation.
//
// Fields:
//   - Align   — window placement (Left, Center, Right).
//   - Partial — if true, edge positions average over the elements actually
//     inside the series instead of reporting NaN.
//
// Example:
//
//	opts := rollmean.DefaultOptions()
//	opts.Align = rollmean.Right
//	out, err := rollmean.Roll(x, 7, &opts)
type Options struct {
	Align   Alignment
	Partial bool
}

// DefaultOptions returns Options with sane defaults:
//   - Center alignment,
//   - full windows only (Partial=false, NaN at the edges).
func DefaultOptions() Options {
	return Options{Align: Center, Partial: false}
}
