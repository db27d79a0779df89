/*
Package holidays resolves Brazilian public and regional holidays for the
reconciliation engine.

PURPOSE:

	Given a date range and a state (UF) code, produce the holiday map the day
	classifier consumes. National and per-state holidays are process-wide
	constant data (see brazil.go); user-declared ad-hoc holidays can be layered
	on top via StoreSource.

REGION FALLBACK:

	The accepted region codes are a closed set (the 27 UFs). An unrecognized
	code degrades to DefaultUF instead of failing, so a typo never blocks an
	analysis. NormalizeUF makes that branch explicit, and resolver output
	reports which UF actually answered.

SEE ALSO:
  - brazil.go: Static holiday tables and the Easter computation
  - store.go: Declared-holiday store interface and merging source
*/
package holidays

import (
	"context"

	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// UF is a Brazilian state code ("SP", "RJ", …).
type UF string

// DefaultUF is the fallback region for unrecognized codes.
const DefaultUF UF = "SP"

// State pairs a UF code with its display name.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// brazilianStates is the closed set of accepted regions, ordered by name.
var brazilianStates = []State{
	{"AC", "Acre"}, {"AL", "Alagoas"}, {"AP", "Amapá"}, {"AM", "Amazonas"},
	{"BA", "Bahia"}, {"CE", "Ceará"}, {"DF", "Distrito Federal"}, {"ES", "Espírito Santo"},
	{"GO", "Goiás"}, {"MA", "Maranhão"}, {"MT", "Mato Grosso"}, {"MS", "Mato Grosso do Sul"},
	{"MG", "Minas Gerais"}, {"PA", "Pará"}, {"PB", "Paraíba"}, {"PR", "Paraná"},
	{"PE", "Pernambuco"}, {"PI", "Piauí"}, {"RJ", "Rio de Janeiro"}, {"RN", "Rio Grande do Norte"},
	{"RS", "Rio Grande do Sul"}, {"RO", "Rondônia"}, {"RR", "Roraima"}, {"SC", "Santa Catarina"},
	{"SP", "São Paulo"}, {"SE", "Sergipe"}, {"TO", "Tocantins"},
}

var validUFs = func() map[UF]bool {
	m := make(map[UF]bool, len(brazilianStates))
	for _, s := range brazilianStates {
		m[UF(s.Code)] = true
	}
	return m
}()

// States returns all accepted states in display order.
func States() []State {
	out := make([]State, len(brazilianStates))
	copy(out, brazilianStates)
	return out
}

// NormalizeUF uppercases and validates a region code. Unknown codes return
// DefaultUF and false: a deliberate permissive policy so a bad code degrades
// instead of rejecting the whole request.
func NormalizeUF(code string) (UF, bool) {
	uf := UF(toUpperASCII(code))
	if validUFs[uf] {
		return uf, true
	}
	return DefaultUF, false
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// =============================================================================
// SOURCE AND RESOLVER
// =============================================================================

// Source answers "all holidays for UF in year", keyed by civil date.
type Source interface {
	Holidays(ctx context.Context, uf UF, year int) (map[timesheet.Date]string, error)
}

// ResolvePeriod collects all holidays inside [p.Start, p.End] for the region,
// querying the source once per distinct year the period touches. It returns
// the UF that actually answered.
func ResolvePeriod(ctx context.Context, src Source, p timesheet.Period, region string) (timesheet.HolidayMap, UF, error) {
	uf, _ := NormalizeUF(region)

	out := timesheet.HolidayMap{}
	for _, year := range p.Years() {
		byDate, err := src.Holidays(ctx, uf, year)
		if err != nil {
			return nil, uf, err
		}
		for date, name := range byDate {
			if p.Contains(date) {
				out[date] = name
			}
		}
	}
	return out, uf, nil
}

// Resolver adapts a Source to the engine's HolidayResolver interface.
// A nil Source resolves against the static Calendar.
type Resolver struct {
	Source Source
}

func (r Resolver) Resolve(ctx context.Context, p timesheet.Period, region string) (timesheet.HolidayMap, string, error) {
	src := r.Source
	if src == nil {
		src = Calendar{}
	}
	m, uf, err := ResolvePeriod(ctx, src, p, region)
	return m, string(uf), err
}
