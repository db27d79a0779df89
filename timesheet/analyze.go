/*
analyze.go - Period orchestrator

PURPOSE:

	Expands a requested date range into per-day records: resolves holidays once
	for the whole range, classifies every date (manual exception > holiday >
	weekend > workday), reconciles the workdays against the expected quota and
	aggregates the summary.

DATA FLOW:

	Analyze -> {HolidayResolver, Classify, Reconcile} -> codec
	Strictly downward, no shared state between calls. Every entity here is
	request-scoped and discarded when the call returns.

ERRORS:

	Only caller input errors surface: an inverted period and a reported-time
	list that does not match the range length fail fast with no partial
	processing. Individual malformed time values never error (codec contract).

SEE ALSO:
  - classify.go: Exclusion chain
  - reconcile.go: Per-workday variance and status
  - errors.go: Sentinel errors returned here
*/
package timesheet

import (
	"context"

	"github.com/shopspring/decimal"
)

// HolidayResolver supplies the holidays falling inside a period for a region.
// It returns the holiday map and the region code actually used (an unknown
// region degrades to a default rather than failing, and callers deserve to
// see which one answered).
type HolidayResolver interface {
	Resolve(ctx context.Context, p Period, region string) (HolidayMap, string, error)
}

// Request is one analysis call. All fields are read-only inputs.
type Request struct {
	Period        Period
	Region        string
	ReportedTimes []string
	Exceptions    ManualExceptions
	Config        Config
}

// DayRecord is the per-date output row. Display fields are pre-formatted for
// the boundary (dd/mm/yyyy dates, "----" placeholders) so renderers stay
// read-only consumers.
type DayRecord struct {
	Date        Date
	WeekdayName string

	WorkedTime   string // reported time display, "----" when skipped
	RedmineValue string // normalized decimal display, "----" when skipped
	Variance     string // signed HH:MM variance; the day-type reason when skipped

	Status            Status
	Icon              string
	StatusDescription string
	CSSClass          string

	IsSkipped bool
	Reason    ReasonKind
	DayType   string // classification description, empty for workdays

	// ManualStatus lets a caller override the computed status for rendering.
	// The engine never sets it.
	ManualStatus *Status
}

// Summary aggregates one analysis.
type Summary struct {
	TotalDays        int
	WorkdaysAnalyzed int
	Conforming       int
	Divergent        int
	Skipped          int

	TotalWorkedHours  decimal.Decimal
	TotalRedmineHours decimal.Decimal

	// ConformityPercentage is Conforming/WorkdaysAnalyzed*100 rounded to two
	// places, zero when no workdays were analyzed. Computed once from the
	// finished counters, never incrementally.
	ConformityPercentage decimal.Decimal
}

// TotalWorkedDisplay formats the worked-hour sum, e.g. "40.00h".
func (s Summary) TotalWorkedDisplay() string { return s.TotalWorkedHours.StringFixed(2) + "h" }

// TotalRedmineDisplay formats the reportable-hour sum, e.g. "40.00h".
func (s Summary) TotalRedmineDisplay() string { return s.TotalRedmineHours.StringFixed(2) + "h" }

// Result is the full outcome of one analysis.
type Result struct {
	Days    []DayRecord
	Summary Summary

	// RegionUsed is the region code the holiday resolver answered for, which
	// may differ from the requested one when it was unrecognized.
	RegionUsed string
}

// Analyze runs one reconciliation over the inclusive date range.
//
// Preconditions: the period must be valid and ReportedTimes must carry exactly
// one entry per day in the range, aligned positionally to date order. Both are
// caller errors and fail fast. A nil resolver analyzes with no holidays.
func Analyze(ctx context.Context, req Request, resolver HolidayResolver) (*Result, error) {
	if !req.Period.Valid() {
		return nil, ErrInvalidPeriod
	}

	days := req.Period.Days()
	if len(req.ReportedTimes) != len(days) {
		return nil, &HoursCountError{Expected: len(days), Got: len(req.ReportedTimes)}
	}

	holidayMap := HolidayMap{}
	regionUsed := req.Region
	if resolver != nil {
		var err error
		holidayMap, regionUsed, err = resolver.Resolve(ctx, req.Period, req.Region)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		Days:       make([]DayRecord, 0, len(days)),
		RegionUsed: regionUsed,
	}
	summary := Summary{
		TotalDays:            len(days),
		TotalWorkedHours:     decimal.Zero,
		TotalRedmineHours:    decimal.Zero,
		ConformityPercentage: decimal.Zero,
	}

	for i, day := range days {
		classification := Classify(day, holidayMap, req.Exceptions)

		record := DayRecord{
			Date:        day,
			WeekdayName: day.WeekdayName(),
		}

		if classification.IsWorkday {
			reported := req.ReportedTimes[i]
			rec := Reconcile(reported, req.Config)

			record.WorkedTime = reported
			record.RedmineValue = rec.RedmineValue.StringFixed(2)
			record.Variance = FormatMinutes(rec.VarianceMinutes)
			record.Status = rec.Status
			record.Icon = rec.Icon
			record.StatusDescription = rec.Description
			record.CSSClass = rec.CSSClass

			summary.WorkdaysAnalyzed++
			if rec.Status == StatusConforming {
				summary.Conforming++
			} else {
				summary.Divergent++
			}

			worked := decimal.NewFromFloat(ParseDecimal(reported))
			summary.TotalWorkedHours = summary.TotalWorkedHours.Add(worked)
			summary.TotalRedmineHours = summary.TotalRedmineHours.Add(worked)
		} else {
			// Excluded day: no reconciliation, even if a time value was
			// supplied for this slot.
			record.WorkedTime = Placeholder
			record.RedmineValue = Placeholder
			record.Variance = classification.Description
			record.Status = StatusSkipped
			record.Icon = IconSkipped
			record.StatusDescription = "Ignorado (" + classification.Description + ")"
			record.CSSClass = CSSSkipped
			record.IsSkipped = true
			record.Reason = classification.Reason
			record.DayType = classification.Description

			summary.Skipped++
		}

		result.Days = append(result.Days, record)
	}

	if summary.WorkdaysAnalyzed > 0 {
		summary.ConformityPercentage = decimal.NewFromInt(int64(summary.Conforming * 100)).
			Div(decimal.NewFromInt(int64(summary.WorkdaysAnalyzed))).
			Round(2)
	}

	result.Summary = summary
	return result, nil
}
