package dateparse

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadFormat indicates input that does not match the fixed layout or
// encodes an impossible calendar date/time. Returned errors wrap this
// sentinel together with the offending input; match via errors.Is.
var ErrBadFormat = errors.New("dateparse: malformed date")

// Layouts accepted by the generic slow path; exported for callers that
// need to fall back to time.Parse themselves.
const (
	// LayoutDate is the fixed date layout the fast path decodes.
	LayoutDate = "2006-01-02"

	// LayoutDateTime is the fixed timestamp layout the fast path decodes.
	LayoutDateTime = "2006-01-02 15:04:05"
)

// Date — fast fixed-layout date parsing.
//
// Description:
//
//	Decodes YYYY-MM-DD by reading digits directly, validates the calendar
//	(month 1–12, day within month, Gregorian leap years) and returns UTC
//	midnight. No layout interpretation, no allocations.
//
// Complexity: O(1) per value.
//
// Errors:
//   - ErrBadFormat (wrapped with the input) — wrong length, wrong
//     separators, non-digits, or an impossible calendar date.
func Date(s string) (time.Time, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, badFormat(s)
	}
	year, ok := atoi4(s[0:4])
	if !ok {
		return time.Time{}, badFormat(s)
	}
	month, ok := atoi2(s[5:7])
	if !ok || month < 1 || month > 12 {
		return time.Time{}, badFormat(s)
	}
	day, ok := atoi2(s[8:10])
	if !ok || day < 1 || day > daysIn(year, month) {
		return time.Time{}, badFormat(s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// DateTime — fast fixed-layout timestamp parsing.
//
// Description:
//
//	Decodes YYYY-MM-DD HH:MM:SS (space or 'T' between date and clock) with
//	the same calendar validation as Date plus clock-range checks, and
//	returns the instant in UTC.
//
// Complexity: O(1) per value.
//
// Errors:
//   - ErrBadFormat (wrapped with the input).
func DateTime(s string) (time.Time, error) {
	if len(s) != 19 || (s[10] != ' ' && s[10] != 'T') || s[13] != ':' || s[16] != ':' {
		return time.Time{}, badFormat(s)
	}
	d, err := Date(s[0:10])
	if err != nil {
		return time.Time{}, badFormat(s)
	}
	hour, ok := atoi2(s[11:13])
	if !ok || hour > 23 {
		return time.Time{}, badFormat(s)
	}
	minute, ok := atoi2(s[14:16])
	if !ok || minute > 59 {
		return time.Time{}, badFormat(s)
	}
	sec, ok := atoi2(s[17:19])
	if !ok || sec > 59 {
		return time.Time{}, badFormat(s)
	}

	return d.Add(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(sec)*time.Second), nil
}

// Dates parses a batch of fixed-layout dates, failing on the first
// malformed entry.
//
// Complexity: O(n) time, O(n) output.
func Dates(ss []string) ([]time.Time, error) {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		d, err := Date(s)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// Generic is the slow twin: stdlib time.Parse in UTC with an arbitrary
// layout. It exists for cross-checks, benchmarks, and inputs the fixed
// fast paths do not cover.
func Generic(s, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, badFormat(s)
	}
	return t, nil
}

// badFormat wraps ErrBadFormat with the offending input.
func badFormat(s string) error {
	return fmt.Errorf("%w: %q", ErrBadFormat, s)
}

// atoi4 decodes exactly four ASCII digits.
func atoi4(s string) (int, bool) {
	var n int
	for i := 0; i < 4; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// atoi2 decodes exactly two ASCII digits.
func atoi2(s string) (int, bool) {
	c0, c1 := s[0], s[1]
	if c0 < '0' || c0 > '9' || c1 < '0' || c1 > '9' {
		return 0, false
	}
	return int(c0-'0')*10 + int(c1-'0'), true
}

// daysIn returns the number of days in the given month, honoring
// Gregorian leap years.
func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default: // February
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
