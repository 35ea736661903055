package dateparse_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/statkit/dateparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDate_Valid verifies the fast path on ordinary and boundary dates.
func TestDate_Valid(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-01": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"2024-02-29": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), // leap day
		"2000-02-29": time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), // 400-rule leap
		"1999-12-31": time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		"0001-01-01": time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := dateparse.Date(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, got.Equal(want), "input %q: got %v", in, got)
	}
}

// TestDate_Invalid verifies calendar and layout validation.
func TestDate_Invalid(t *testing.T) {
	bad := []string{
		"",
		"2024-1-01",   // short month
		"2024/01/01",  // wrong separators
		"2024-00-10",  // month 0
		"2024-13-10",  // month 13
		"2024-04-31",  // April has 30 days
		"2023-02-29",  // not a leap year
		"1900-02-29",  // 100-rule: not a leap year
		"2024-02-3a",  // non-digit
		"2024-02-029", // too long
	}
	for _, in := range bad {
		_, err := dateparse.Date(in)
		assert.ErrorIs(t, err, dateparse.ErrBadFormat, "input %q must be rejected", in)
	}
}

// TestDateTime_Valid covers both separators and clock boundaries.
func TestDateTime_Valid(t *testing.T) {
	want := time.Date(2024, 2, 29, 13, 37, 5, 0, time.UTC)

	got, err := dateparse.DateTime("2024-02-29 13:37:05")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	got, err = dateparse.DateTime("2024-02-29T13:37:05")
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "'T' separator must be accepted")

	got, err = dateparse.DateTime("2024-02-29 23:59:59")
	require.NoError(t, err)
	assert.Equal(t, 23, got.Hour())
}

// TestDateTime_Invalid verifies clock-range validation.
func TestDateTime_Invalid(t *testing.T) {
	bad := []string{
		"2024-02-29 24:00:00", // hour 24
		"2024-02-29 12:60:00", // minute 60
		"2024-02-29 12:00:60", // second 60
		"2024-02-29_12:00:00", // bad separator
		"2024-02-29 12-00-00", // bad clock separators
		"2023-02-29 12:00:00", // bad date part
	}
	for _, in := range bad {
		_, err := dateparse.DateTime(in)
		assert.ErrorIs(t, err, dateparse.ErrBadFormat, "input %q must be rejected", in)
	}
}

// TestDates_Batch verifies the batch helper and its first-failure report.
func TestDates_Batch(t *testing.T) {
	out, err := dateparse.Dates([]string{"2024-01-01", "2024-06-15"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, time.June, out[1].Month())

	_, err = dateparse.Dates([]string{"2024-01-01", "oops", "2024-06-15"})
	assert.ErrorIs(t, err, dateparse.ErrBadFormat)
	assert.ErrorContains(t, err, "entry 1", "failure must name the offending entry")
}

// TestDate_CrossCheckGeneric is the oracle property: on randomized valid
// inputs the fast path must agree with stdlib time.Parse.
func TestDate_CrossCheckGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		y := 1900 + rng.Intn(300)
		m := 1 + rng.Intn(12)
		d := 1 + rng.Intn(28) // always valid, leap handling tested elsewhere
		in := fmt.Sprintf("%04d-%02d-%02d", y, m, d)

		fast, err := dateparse.Date(in)
		require.NoError(t, err, "input %q", in)
		slow, err := dateparse.Generic(in, dateparse.LayoutDate)
		require.NoError(t, err, "input %q", in)

		assert.True(t, fast.Equal(slow), "input %q: fast %v vs generic %v", in, fast, slow)
	}
}

// TestGeneric_BadInput verifies the slow path wraps ErrBadFormat too.
func TestGeneric_BadInput(t *testing.T) {
	_, err := dateparse.Generic("not-a-date", dateparse.LayoutDate)
	assert.ErrorIs(t, err, dateparse.ErrBadFormat)
}
