/*
codec.go - Human time string codec (HH:MM <-> minutes <-> decimal hours)

PURPOSE:

	Converts between the three representations of a reported time value:
	- "HH:MM" text, optionally signed (negative = balance carry-over)
	- signed total minutes (canonical integer form)
	- decimal hours (the externally reportable "Redmine" form)

FAIL-TO-ZERO CONTRACT:

	Parsing never fails. Empty input, the placeholder sentinels ("----", "erro")
	and structurally malformed text all decay to zero. Callers inherit this:
	one corrupt entry in a long period must not block the rest of the analysis.
	ParseTime exposes the fallback explicitly so it is testable instead of
	accidental.

ROUNDING:

	Minute rounding uses math.Round: halves round away from zero, so a
	fractional 30.5 minutes becomes 31, and -30.5 becomes -31. Pinned by tests.
*/
package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// placeholders are inputs that mean "no value" and parse to zero.
var placeholders = map[string]bool{
	"":     true,
	"----": true,
	"erro": true,
}

// Placeholder is the display form of an absent value.
const Placeholder = "----"

// ParsedTime is the result of parsing a time string. Defaulted marks values
// that fell back to zero instead of being parsed, making the silent-fallback
// branch visible to callers and tests.
type ParsedTime struct {
	Minutes   int
	Defaulted bool
}

// ParseTime parses an optionally signed "HH:MM" string into total minutes.
func ParseTime(s string) ParsedTime {
	text := strings.TrimSpace(s)
	if placeholders[text] {
		return ParsedTime{Defaulted: true}
	}

	negative := strings.HasPrefix(text, "-")
	text = strings.TrimSpace(strings.ReplaceAll(text, "-", ""))

	hoursPart, minutesPart, found := strings.Cut(text, ":")
	if !found {
		return ParsedTime{Defaulted: true}
	}
	hours, err := strconv.Atoi(hoursPart)
	if err != nil {
		return ParsedTime{Defaulted: true}
	}
	minutes, err := strconv.Atoi(minutesPart)
	if err != nil {
		return ParsedTime{Defaulted: true}
	}

	total := hours*60 + minutes
	if negative {
		total = -total
	}
	return ParsedTime{Minutes: total}
}

// ParseMinutes converts "HH:MM" (or "-HH:MM") to signed total minutes,
// zero on malformed input.
func ParseMinutes(s string) int { return ParseTime(s).Minutes }

// ParseDecimal converts a reported time to decimal hours. "08:17" -> 8.2833….
// Input without ':' is attempted as a plain number ("7.5" -> 7.5).
// Zero on malformed input.
func ParseDecimal(s string) float64 {
	if parsed := ParseTime(s); !parsed.Defaulted {
		return float64(parsed.Minutes) / 60
	}
	text := strings.TrimSpace(s)
	if placeholders[text] || strings.Contains(text, ":") {
		return 0
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatMinutes formats signed total minutes as "[-]HH:MM".
func FormatMinutes(minutes int) string {
	prefix := ""
	if minutes < 0 {
		prefix = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", prefix, minutes/60, minutes%60)
}

// FormatDecimal formats decimal hours as "[-]HH:MM", rounding the fractional
// part to the nearest minute. A carry at the 60-minute boundary rolls into
// the hour: 7.9917 -> "08:00", never "07:60".
func FormatDecimal(hours float64) string {
	prefix := ""
	if hours < 0 {
		prefix = "-"
		hours = -hours
	}

	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m >= 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%s%02d:%02d", prefix, h, m)
}

// NormalizedDecimal is the reported time as decimal hours rounded to two
// places, the externally reportable form.
func NormalizedDecimal(s string) decimal.Decimal {
	return decimal.NewFromFloat(ParseDecimal(s)).Round(2)
}
