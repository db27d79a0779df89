package holidays

import (
	"context"
	"time"

	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// =============================================================================
// BRAZILIAN HOLIDAY CALENDAR - Immutable static tables
// =============================================================================

// fixedHoliday is a holiday occurring on the same month/day every year.
type fixedHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

var nationalFixed = []fixedHoliday{
	{time.January, 1, "Confraternização Universal"},
	{time.April, 21, "Tiradentes"},
	{time.May, 1, "Dia do Trabalhador"},
	{time.September, 7, "Independência do Brasil"},
	{time.October, 12, "Nossa Senhora Aparecida"},
	{time.November, 2, "Finados"},
	{time.November, 15, "Proclamação da República"},
	{time.December, 25, "Natal"},
}

// One well-established civic holiday per state. ES has no fixed statewide
// holiday of its own.
var stateFixed = map[UF][]fixedHoliday{
	"AC": {{time.June, 15, "Aniversário do Acre"}},
	"AL": {{time.June, 24, "São João"}, {time.September, 16, "Emancipação Política de Alagoas"}},
	"AP": {{time.September, 13, "Criação do Território Federal do Amapá"}},
	"AM": {{time.September, 5, "Elevação do Amazonas à Categoria de Província"}},
	"BA": {{time.July, 2, "Independência da Bahia"}},
	"CE": {{time.March, 25, "Data Magna do Ceará"}},
	"DF": {{time.April, 21, "Fundação de Brasília"}, {time.November, 30, "Dia do Evangélico"}},
	"ES": {},
	"GO": {{time.July, 26, "Fundação da Cidade de Goiás"}},
	"MA": {{time.July, 28, "Adesão do Maranhão à Independência"}},
	"MT": {{time.November, 20, "Consciência Negra"}},
	"MS": {{time.October, 11, "Criação do Estado de Mato Grosso do Sul"}},
	"MG": {{time.April, 21, "Data Magna de Minas Gerais"}},
	"PA": {{time.August, 15, "Adesão do Grão-Pará à Independência"}},
	"PB": {{time.August, 5, "Fundação do Estado da Paraíba"}},
	"PR": {{time.December, 19, "Emancipação do Paraná"}},
	"PE": {{time.March, 6, "Revolução Pernambucana"}},
	"PI": {{time.October, 19, "Dia do Piauí"}},
	"RJ": {{time.April, 23, "São Jorge"}, {time.November, 20, "Consciência Negra"}},
	"RN": {{time.October, 3, "Mártires de Cunhaú e Uruaçu"}},
	"RS": {{time.September, 20, "Revolução Farroupilha"}},
	"RO": {{time.January, 4, "Criação do Estado de Rondônia"}},
	"RR": {{time.October, 5, "Criação do Estado de Roraima"}},
	"SC": {{time.August, 11, "Criação da Capitania de Santa Catarina"}},
	"SP": {{time.July, 9, "Revolução Constitucionalista"}},
	"SE": {{time.July, 8, "Emancipação Política de Sergipe"}},
	"TO": {{time.October, 5, "Criação do Estado do Tocantins"}},
}

// Easter computes Easter Sunday for a year in the Gregorian calendar using
// the anonymous Gregorian algorithm.
func Easter(year int) timesheet.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return timesheet.NewDate(year, time.Month(month), day)
}

// Calendar is the static holiday source: national fixed dates, the movable
// feasts derived from Easter, and one table of state holidays per UF.
type Calendar struct{}

func (Calendar) Holidays(_ context.Context, uf UF, year int) (map[timesheet.Date]string, error) {
	out := make(map[timesheet.Date]string)

	for _, h := range nationalFixed {
		out[timesheet.NewDate(year, h.Month, h.Day)] = h.Name
	}
	// National holiday since 2024 (Lei 14.759).
	if year >= 2024 {
		out[timesheet.NewDate(year, time.November, 20)] = "Dia Nacional de Zumbi e da Consciência Negra"
	}

	easter := Easter(year)
	out[easter.AddDays(-48)] = "Carnaval"
	out[easter.AddDays(-47)] = "Carnaval"
	out[easter.AddDays(-2)] = "Sexta-feira Santa"
	out[easter.AddDays(60)] = "Corpus Christi"

	for _, h := range stateFixed[uf] {
		out[timesheet.NewDate(year, h.Month, h.Day)] = h.Name
	}

	return out, nil
}
