package timesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// =============================================================================
// PARSING
// =============================================================================

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"08:00", 480},
		{"08:17", 497},
		{"-01:30", -90},
		{"0:05", 5},
		{" 08:05 ", 485},
		{"00:00", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, timesheet.ParseMinutes(c.in), "input %q", c.in)
	}
}

func TestParseMinutes_MalformedDecaysToZero(t *testing.T) {
	// One corrupt entry must never abort an analysis, so parsing fails
	// closed: everything unparseable is zero minutes.
	for _, in := range []string{"", "----", "erro", "abc", "7.5", "08h00", ":30x", "aa:bb"} {
		assert.Equal(t, 0, timesheet.ParseMinutes(in), "input %q", in)
	}
}

func TestParseTime_MarksDefaultedValues(t *testing.T) {
	parsed := timesheet.ParseTime("08:30")
	assert.False(t, parsed.Defaulted)
	assert.Equal(t, 510, parsed.Minutes)

	parsed = timesheet.ParseTime("not a time")
	assert.True(t, parsed.Defaulted)
	assert.Equal(t, 0, parsed.Minutes)

	parsed = timesheet.ParseTime("----")
	assert.True(t, parsed.Defaulted)
}

func TestParseDecimal(t *testing.T) {
	assert.InDelta(t, 8.2833, timesheet.ParseDecimal("08:17"), 0.0001)
	assert.InDelta(t, -1.5, timesheet.ParseDecimal("-01:30"), 0.0001)
	assert.Equal(t, 0.0, timesheet.ParseDecimal("erro"))

	// Without a colon, plain numeric input parses directly.
	assert.Equal(t, 7.5, timesheet.ParseDecimal("7.5"))
	assert.Equal(t, -7.5, timesheet.ParseDecimal("-7.5"))
	assert.Equal(t, 0.0, timesheet.ParseDecimal("abc"))
}

// =============================================================================
// FORMATTING
// =============================================================================

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "08:17", timesheet.FormatMinutes(497))
	assert.Equal(t, "-01:30", timesheet.FormatMinutes(-90))
	assert.Equal(t, "00:00", timesheet.FormatMinutes(0))
	assert.Equal(t, "26:10", timesheet.FormatMinutes(1570))
}

func TestFormatMinutes_RoundTripsParse(t *testing.T) {
	// Round-tripping text -> minutes -> text is lossless for well-formed
	// ±HH:MM inputs with minute granularity.
	cases := []struct {
		in   string
		want string
	}{
		{"08:00", "08:00"},
		{"8:05", "08:05"},
		{"-1:30", "-01:30"},
		{"00:59", "00:59"},
		{"12:34", "12:34"},
	}
	for _, c := range cases {
		got := timesheet.FormatMinutes(timesheet.ParseMinutes(c.in))
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "08:17", timesheet.FormatDecimal(8.2833))
	assert.Equal(t, "-01:30", timesheet.FormatDecimal(-1.5))
	assert.Equal(t, "00:00", timesheet.FormatDecimal(0))
}

func TestFormatDecimal_SixtyMinuteCarry(t *testing.T) {
	// Rounding the fractional part up to 60 minutes carries into the hour.
	assert.Equal(t, "08:00", timesheet.FormatDecimal(7.9917))
	assert.Equal(t, "01:00", timesheet.FormatDecimal(0.9999))
}

func TestFormatDecimal_HalfMinuteRoundsAwayFromZero(t *testing.T) {
	// 0.375h is exactly 22.5 minutes in binary floating point; math.Round
	// takes halves away from zero (22.5 -> 23), unlike banker's rounding.
	assert.Equal(t, "00:23", timesheet.FormatDecimal(0.375))
	assert.Equal(t, "-00:23", timesheet.FormatDecimal(-0.375))

	// 0.125h is exactly 7.5 minutes.
	assert.Equal(t, "00:08", timesheet.FormatDecimal(0.125))
}

func TestNormalizedDecimal(t *testing.T) {
	assert.Equal(t, "8.28", timesheet.NormalizedDecimal("08:17").StringFixed(2))
	assert.Equal(t, "-1.50", timesheet.NormalizedDecimal("-01:30").StringFixed(2))
	assert.Equal(t, "0.00", timesheet.NormalizedDecimal("erro").StringFixed(2))
}
