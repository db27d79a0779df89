/*
errors.go - Error types for the reconciliation engine

PURPOSE:

	All engine errors in one place. Only caller input errors surface as Go
	errors; malformed per-day time values never do (they decay to zero inside
	the codec so a single bad entry cannot abort a whole period).

ERROR CATEGORIES:
 1. Period errors - End before start
 2. Alignment errors - Reported-time list not matching the date range
 3. Date errors - Unparseable boundary dates

SEE ALSO:
  - analyze.go: Returns these errors
  - codec.go: The fail-to-zero contract for individual time values
*/
package timesheet

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrHoursCountMismatch is returned when the reported-time list length does
	// not match the number of days in the requested period.
	ErrHoursCountMismatch = errors.New("reported hours count does not match period length")

	// ErrInvalidDate is returned when a boundary date is not valid dd/mm/yyyy.
	ErrInvalidDate = errors.New("invalid date")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// HoursCountError reports an alignment mismatch between the expanded date
// range and the reported-time list.
type HoursCountError struct {
	Expected int
	Got      int
}

func (e *HoursCountError) Error() string {
	return fmt.Sprintf("expected %d reported hour values, got %d", e.Expected, e.Got)
}

func (e *HoursCountError) Unwrap() error { return ErrHoursCountMismatch }

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrHoursCountMismatch) ||
		errors.Is(err, ErrInvalidDate)
}
