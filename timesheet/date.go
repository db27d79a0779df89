package timesheet

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Civil calendar date (no time-of-day, no time zone)
// =============================================================================

// Date is a plain civil date. It is comparable and used directly as a map key
// for holiday and exception lookups.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateFromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }
func (d Date) Equal(other Date) bool  { return d == other }

// Arithmetic
func (d Date) AddDays(n int) Date { return DateFromTime(d.Time().AddDate(0, 0, n)) }

// Properties
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
func (d Date) IsZero() bool { return d == Date{} }

// weekdayNames maps Go weekdays to their Brazilian Portuguese short names,
// the form the analysis output and the spreadsheet use.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayName returns the Portuguese weekday name.
func (d Date) WeekdayName() string { return weekdayNames[d.Weekday()] }

// ParseBR parses a date in the dd/mm/yyyy boundary format.
func ParseBR(s string) (Date, error) {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateFromTime(t), nil
}

// FormatBR formats the date as dd/mm/yyyy.
func (d Date) FormatBR() string { return d.Time().Format("02/01/2006") }

func (d Date) String() string { return d.FormatBR() }

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is an inclusive [Start, End] date range.
type Period struct {
	Start Date
	End   Date
}

func SingleDay(d Date) Period { return Period{Start: d, End: d} }

// Valid reports whether End is not before Start.
func (p Period) Valid() bool { return !p.End.Before(p.Start) }

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns every date in the period, inclusive, in chronological order.
func (p Period) Days() []Date {
	var days []Date
	for current := p.Start; !current.After(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Length is the inclusive day count.
func (p Period) Length() int {
	if !p.Valid() {
		return 0
	}
	return int(p.End.Time().Sub(p.Start.Time()).Hours()/24) + 1
}

// Years returns the distinct calendar years the period touches, ascending.
func (p Period) Years() []int {
	var years []int
	for y := p.Start.Year; y <= p.End.Year; y++ {
		years = append(years, y)
	}
	return years
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
