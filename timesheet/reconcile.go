package timesheet

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// STATUS - Fixed enum the export renderer and frontend switch on
// =============================================================================

// Status is the conformity status of one analyzed day. These three values are
// a closed set; renderers map them to presentation styles and must never see
// free text here.
type Status string

const (
	StatusConforming Status = "confere"
	StatusDivergent  Status = "divergente"
	StatusSkipped    Status = "ignorado"
)

// Presentation attributes per status, carried so consumers render identically.
const (
	IconConforming = "✔"
	IconDivergent  = "✘"
	IconSkipped    = "📅"

	CSSConforming = "status-ok"
	CSSDivergent  = "status-divergent"
	CSSSkipped    = "status-ignored"
)

// =============================================================================
// CONFIG - Per-analysis reconciliation parameters
// =============================================================================

const (
	DefaultExpectedHours    = 8.0
	DefaultToleranceMinutes = 2
)

// Config carries the expected daily quota and the conformity tolerance.
// Immutable for the duration of one analysis.
type Config struct {
	ExpectedHours    float64
	ToleranceMinutes int
}

func DefaultConfig() Config {
	return Config{
		ExpectedHours:    DefaultExpectedHours,
		ToleranceMinutes: DefaultToleranceMinutes,
	}
}

// =============================================================================
// RECONCILIATION - Reported vs expected for a single workday
// =============================================================================

// DayReconciliation is the numeric outcome for one workday.
type DayReconciliation struct {
	ReportedMinutes int
	ExpectedMinutes int
	VarianceMinutes int

	// RedmineValue is the reported decimal rounded to 2 places, independent
	// of the variance computation's own rounding.
	RedmineValue decimal.Decimal

	Status      Status
	Icon        string
	Description string
	CSSClass    string
}

// Reconcile converts the reported time and computes its variance against the
// expected quota. Variance within ±ToleranceMinutes is conforming.
// Malformed reported time decays to zero (codec contract) and is reconciled
// as a zero-hour day rather than aborting.
func Reconcile(reported string, cfg Config) DayReconciliation {
	workedDecimal := ParseDecimal(reported)
	variance := int(math.Round((workedDecimal - cfg.ExpectedHours) * 60))

	r := DayReconciliation{
		ReportedMinutes: ParseMinutes(reported),
		ExpectedMinutes: int(math.Round(cfg.ExpectedHours * 60)),
		VarianceMinutes: variance,
		RedmineValue:    decimal.NewFromFloat(workedDecimal).Round(2),
	}

	if abs(variance) <= cfg.ToleranceMinutes {
		r.Status = StatusConforming
		r.Icon = IconConforming
		r.Description = "Confere"
		r.CSSClass = CSSConforming
	} else {
		r.Status = StatusDivergent
		r.Icon = IconDivergent
		r.Description = fmt.Sprintf("Divergente (%d min)", abs(variance))
		r.CSSClass = CSSDivergent
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
