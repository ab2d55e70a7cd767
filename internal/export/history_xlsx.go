// Package export renders year summaries as spreadsheets.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/gdg-garage/camp-profile-api/internal/history"
	"github.com/gdg-garage/camp-profile-api/internal/i18n"
	"github.com/gdg-garage/camp-profile-api/internal/models"
)

const SheetName = "Historia"

var header = []string{"Rok", "Status", "Warsztaty", "Punkty", "Wynik %", "Kwalifikacja"}

// Header returns the column titles matching Rows.
func Header() []string {
	return append([]string(nil), header...)
}

// Rows flattens summaries into spreadsheet rows: one per result, or a single
// row carrying the notice for years without results.
func Rows(user models.User, summaries []history.YearSummary) [][]string {
	var rows [][]string
	for _, s := range summaries {
		status := ""
		if s.Participation != nil {
			status = i18n.Status(s.Participation.Status, user.Gender)
		}
		year := strconv.Itoa(s.Year)

		if len(s.Results) == 0 {
			rows = append(rows, []string{year, status, i18n.ForGender("history.interested_only", user.Gender), "", "", ""})
			continue
		}
		for _, r := range s.Results {
			rows = append(rows, []string{
				year,
				status,
				r.Workshop.Title,
				formatFloat(r.Points),
				formatFloat(r.Percent),
				formatQualified(r, user.Gender),
			})
		}
	}
	return rows
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatQualified(r history.Result, g models.Gender) string {
	switch {
	case !r.Workshop.IsQualifying:
		return i18n.Text(i18n.NotQualifying)
	case r.Points == nil:
		return i18n.Text(i18n.NotChecked)
	case r.Qualified == nil:
		return ""
	case *r.Qualified:
		return i18n.ForGender("results.qualified", g)
	}
	return i18n.ForGender("results.not_qualified", g)
}

// HistoryWorkbook builds a workbook with a single sheet of the participant's
// history.
func HistoryWorkbook(user models.User, summaries []history.YearSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellStr(SheetName, "A1", user.FullName()); err != nil {
		return nil, fmt.Errorf("set title: %w", err)
	}

	for c, h := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 2)
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	for r, row := range Rows(user, summaries) {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			if err := f.SetCellStr(SheetName, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := styleSheet(f, SheetName); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// styleSheet bolds the title and header rows, puts a filter on the header and
// sets column widths.
func styleSheet(f *excelize.File, sheet string) error {
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("last column: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("bold style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("style title: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A2", last+"2", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.AutoFilter(sheet, "A2:"+last+"2", nil); err != nil {
		return fmt.Errorf("autofilter: %w", err)
	}
	widths := []struct {
		from, to string
		width    float64
	}{
		{"A", "B", 14},
		{"C", "C", 40},
		{"D", last, 14},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return fmt.Errorf("width of %s:%s: %w", w.from, w.to, err)
		}
	}
	return nil
}

// HistoryXLSX returns the encoded workbook.
func HistoryXLSX(user models.User, summaries []history.YearSummary) ([]byte, error) {
	f, err := HistoryWorkbook(user, summaries)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
