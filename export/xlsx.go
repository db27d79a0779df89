/*
Package export renders analysis results to an XLSX spreadsheet.

PURPOSE:

	A pure formatting consumer: it reads per-day records and writes a styled
	worksheet, switching presentation only on the fixed Status enum
	(conforming, divergent, skipped). It never recomputes anything.

COLUMNS:

	Data | Dia | Tempo Trabalhado | Valor Redmine | Tipo | Status
*/
package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

// DefaultFilename is the attachment name for downloads.
const DefaultFilename = "apontamento_resultado.xlsx"

// SheetName is the single worksheet the renderer produces.
const SheetName = "Apontamento de Horas"

// Day is one spreadsheet row. A non-nil ManualStatus overrides Status for
// styling (the analysis screen lets users re-mark days by hand).
type Day struct {
	Date              string
	Weekday           string
	WorkedTime        string
	RedmineValue      string
	DayType           string
	Status            timesheet.Status
	StatusDescription string
	ManualStatus      *timesheet.Status
}

var headers = []string{"Data", "Dia", "Tempo Trabalhado", "Valor Redmine", "Tipo", "Status"}
var columnWidths = []float64{12, 12, 18, 15, 20, 18}

// Fill colors per status bucket.
const (
	headerColor     = "1F4E79"
	conformingColor = "C6EFCE"
	divergentColor  = "FFC7CE"
	skippedColor    = "DDEBF7"
)

// Render writes the day records to a new workbook.
func Render(days []Day) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	statusStyles := map[timesheet.Status]int{}
	for status, color := range map[timesheet.Status]string{
		timesheet.StatusConforming: conformingColor,
		timesheet.StatusDivergent:  divergentColor,
		timesheet.StatusSkipped:    skippedColor,
	} {
		id, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Border: thinBorder(),
		})
		if err != nil {
			return nil, err
		}
		statusStyles[status] = id
	}
	plainStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, err
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, day := range days {
		row := i + 2
		values := []string{
			day.Date, day.Weekday, day.WorkedTime,
			day.RedmineValue, day.DayType, day.StatusDescription,
		}

		style := plainStyle
		if id, ok := statusStyles[effectiveStatus(day)]; ok {
			style = id
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
				return nil, err
			}
		}
	}

	for col, width := range columnWidths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func effectiveStatus(d Day) timesheet.Status {
	if d.ManualStatus != nil {
		return *d.ManualStatus
	}
	return d.Status
}

func thinBorder() []excelize.Border {
	var borders []excelize.Border
	for _, side := range []string{"left", "right", "top", "bottom"} {
		borders = append(borders, excelize.Border{Type: side, Style: 1, Color: "000000"})
	}
	return borders
}
