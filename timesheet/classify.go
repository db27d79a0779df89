package timesheet

import "fmt"

// =============================================================================
// DAY CLASSIFICATION - Workday vs excluded day, and why
// =============================================================================

// ReasonKind identifies why a date was excluded from reconciliation.
type ReasonKind string

const (
	ReasonNone    ReasonKind = ""
	ReasonManual  ReasonKind = "manual"
	ReasonHoliday ReasonKind = "feriado"
	ReasonWeekend ReasonKind = "final_semana"
)

// HolidayMap maps dates to holiday display names for one analysis.
type HolidayMap map[Date]string

// ManualExceptions maps dates to declared exception labels
// (Férias, Atestado, …). A manual exception overrides everything else.
type ManualExceptions map[Date]string

// DayClassification is the outcome of classifying one date.
// IsWorkday=true implies Reason == ReasonNone and an empty Description.
type DayClassification struct {
	IsWorkday   bool
	Reason      ReasonKind
	Description string
}

// ClassificationRule is one step of the exclusion chain. Match returns the
// human-readable description and whether the rule claims the date.
type ClassificationRule struct {
	Reason ReasonKind
	Match  func(d Date, holidays HolidayMap, manual ManualExceptions) (string, bool)
}

// ClassificationRules is the exclusion chain, in priority order: a manual
// exception beats a holiday, a holiday beats a weekend. First match wins and
// no further rules run. Order is an invariant callers rely on for status-label
// fidelity (a holiday on a Saturday reports as a holiday, not a weekend).
var ClassificationRules = []ClassificationRule{
	{
		Reason: ReasonManual,
		Match: func(d Date, _ HolidayMap, manual ManualExceptions) (string, bool) {
			label, ok := manual[d]
			return label, ok
		},
	},
	{
		Reason: ReasonHoliday,
		Match: func(d Date, holidays HolidayMap, _ ManualExceptions) (string, bool) {
			name, ok := holidays[d]
			if !ok {
				return "", false
			}
			return fmt.Sprintf("Feriado (%s)", name), true
		},
	},
	{
		Reason: ReasonWeekend,
		Match: func(d Date, _ HolidayMap, _ ManualExceptions) (string, bool) {
			if !d.IsWeekend() {
				return "", false
			}
			return fmt.Sprintf("Final de Semana (%s)", d.WeekdayName()), true
		},
	},
}

// Classify runs the exclusion chain over one date. Dates no rule claims are
// workdays.
func Classify(d Date, holidays HolidayMap, manual ManualExceptions) DayClassification {
	for _, rule := range ClassificationRules {
		if description, ok := rule.Match(d, holidays, manual); ok {
			return DayClassification{Reason: rule.Reason, Description: description}
		}
	}
	return DayClassification{IsWorkday: true}
}
