/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	JSON structures for the API boundary. Dates cross this boundary as
	dd/mm/yyyy text; everything internal works on the structured date type.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - timesheet/analyze.go: The engine types these mirror
*/
package api

import (
	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// AnalyzeRequest is the inbound analysis request.
// SelectionType "single" analyzes StartDate alone; "period" requires EndDate.
type AnalyzeRequest struct {
	SelectionType    string               `json:"selection_type"`
	StartDate        string               `json:"start_date"`
	EndDate          string               `json:"end_date,omitempty"`
	State            string               `json:"state"`
	WorkedHours      []string             `json:"worked_hours"`
	ManualExceptions []ManualExceptionDTO `json:"manual_exceptions,omitempty"`
}

// ManualExceptionDTO declares one excluded date and its category.
type ManualExceptionDTO struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

// DayResultDTO is one per-day record in the analysis response. The same shape
// comes back in export requests, possibly with a manual status override.
type DayResultDTO struct {
	Date              string  `json:"date"`
	DayOfWeek         string  `json:"day_of_week"`
	WorkedTime        string  `json:"worked_time"`
	RedmineValue      string  `json:"redmine_value"`
	Difference        string  `json:"difference"`
	Status            string  `json:"status"`
	StatusIcon        string  `json:"status_icon"`
	StatusDescription string  `json:"status_description"`
	CSSClass          string  `json:"css_class"`
	IsIgnored         bool    `json:"is_ignored"`
	DayType           string  `json:"day_type,omitempty"`
	ManualStatus      *string `json:"manual_status,omitempty"`
}

// SummaryDTO aggregates the analysis.
type SummaryDTO struct {
	TotalDays            int     `json:"total_days"`
	WorkdaysAnalyzed     int     `json:"workdays_analyzed"`
	DaysOK               int     `json:"days_ok"`
	DaysDivergent        int     `json:"days_divergent"`
	DaysIgnored          int     `json:"days_ignored"`
	TotalWorkedHours     float64 `json:"total_worked_hours"`
	TotalRedmineHours    float64 `json:"total_redmine_hours"`
	ConformityPercentage float64 `json:"conformity_percentage"`
	TotalWorkedDisplay   string  `json:"total_worked_display"`
	TotalRedmineDisplay  string  `json:"total_redmine_display"`
	State                string  `json:"state"`
}

// AnalyzeResponse is the outbound analysis result.
type AnalyzeResponse struct {
	Days    []DayResultDTO `json:"days"`
	Summary SummaryDTO     `json:"summary"`
}

// HolidayDTO is one declared holiday.
type HolidayDTO struct {
	ID   string `json:"id"`
	UF   string `json:"uf"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// CreateHolidayRequest declares a holiday for a UF.
type CreateHolidayRequest struct {
	UF   string `json:"uf"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// ExportRequest carries the rows to render, as the client currently sees
// them (manual overrides included).
type ExportRequest struct {
	Days []DayResultDTO `json:"days"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func dayRecordDTO(r timesheet.DayRecord) DayResultDTO {
	dto := DayResultDTO{
		Date:              r.Date.FormatBR(),
		DayOfWeek:         r.WeekdayName,
		WorkedTime:        r.WorkedTime,
		RedmineValue:      r.RedmineValue,
		Difference:        r.Variance,
		Status:            string(r.Status),
		StatusIcon:        r.Icon,
		StatusDescription: r.StatusDescription,
		CSSClass:          r.CSSClass,
		IsIgnored:         r.IsSkipped,
		DayType:           r.DayType,
	}
	if r.ManualStatus != nil {
		s := string(*r.ManualStatus)
		dto.ManualStatus = &s
	}
	return dto
}

func summaryDTO(s timesheet.Summary, state string) SummaryDTO {
	return SummaryDTO{
		TotalDays:            s.TotalDays,
		WorkdaysAnalyzed:     s.WorkdaysAnalyzed,
		DaysOK:               s.Conforming,
		DaysDivergent:        s.Divergent,
		DaysIgnored:          s.Skipped,
		TotalWorkedHours:     s.TotalWorkedHours.InexactFloat64(),
		TotalRedmineHours:    s.TotalRedmineHours.InexactFloat64(),
		ConformityPercentage: s.ConformityPercentage.InexactFloat64(),
		TotalWorkedDisplay:   s.TotalWorkedDisplay(),
		TotalRedmineDisplay:  s.TotalRedmineDisplay(),
		State:                state,
	}
}
