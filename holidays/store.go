package holidays

import (
	"context"

	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// =============================================================================
// DECLARED HOLIDAYS - User-maintained ad-hoc dates layered over the tables
// =============================================================================

// Declared is a user-declared holiday (a municipal date, a company day off).
type Declared struct {
	ID   string
	UF   UF
	Date timesheet.Date
	Name string
}

// DeclaredStore persists declared holidays. Implemented by store/sqlite.
type DeclaredStore interface {
	HolidaysInYear(ctx context.Context, uf UF, year int) ([]Declared, error)
}

// StoreSource merges declared holidays over a base source. On a date
// collision the declared name wins.
type StoreSource struct {
	Base  Source
	Store DeclaredStore
}

func (s StoreSource) Holidays(ctx context.Context, uf UF, year int) (map[timesheet.Date]string, error) {
	base := s.Base
	if base == nil {
		base = Calendar{}
	}
	out, err := base.Holidays(ctx, uf, year)
	if err != nil {
		return nil, err
	}

	if s.Store == nil {
		return out, nil
	}
	declared, err := s.Store.HolidaysInYear(ctx, uf, year)
	if err != nil {
		return nil, err
	}
	for _, d := range declared {
		out[d.Date] = d.Name
	}
	return out, nil
}
