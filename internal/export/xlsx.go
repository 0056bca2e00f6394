package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

// SheetName is the worksheet the timesheet rows are written to.
const SheetName = "Timesheet Records"

// DefaultXLSXName is the workbook filename used when the caller does not
// pick one.
const DefaultXLSXName = "My_Timesheet.xlsx"

var columnWidths = []float64{10, 15, 12, 10, 10, 8, 12, 12, 12, 18}

// ToXLSX writes the entries to a styled workbook: a bold header row, one
// row per entry, then a TOTALS row and a WEEKLY PAY row.
func ToXLSX(entries []timesheet.Entry, sum timesheet.Summary, currency, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	writeRow := func(row int, values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(SheetName, cell, &values)
	}

	headerValues := make([]any, len(header))
	for i, h := range header {
		headerValues[i] = h
	}
	if err := writeRow(1, headerValues); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		values := []any{
			i + 1,
			e.Week,
			e.Date.Format(dateLayout),
			e.SignIn,
			e.SignOut,
			e.NumberOfBreaks,
			timecalc.BreakMinutes(e.PaidBreakHours),
			timecalc.BreakMinutes(e.UnpaidBreakHours),
			round2(e.HoursWorked),
			e.SubmittedAt.Local().Format(submittedLayout),
		}
		if err := writeRow(i+2, values); err != nil {
			return fmt.Errorf("write entry row: %w", err)
		}
	}

	totalsRow := len(entries) + 2
	if err := writeRow(totalsRow, []any{"", "", "", "", "TOTALS:", "", "", "", round2(sum.TotalHours), ""}); err != nil {
		return fmt.Errorf("write totals row: %w", err)
	}
	if err := writeRow(totalsRow+1, []any{"", "", "", "", "WEEKLY PAY:", "", "", "", timecalc.FormatPay(currency, sum.TotalPay), ""}); err != nil {
		return fmt.Errorf("write pay row: %w", err)
	}

	if err := styleSheet(f, totalsRow); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func styleSheet(f *excelize.File, totalsRow int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2563EB"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F3F4F6"}},
	})
	if err != nil {
		return fmt.Errorf("totals style: %w", err)
	}
	payStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"22C55E"}},
	})
	if err != nil {
		return fmt.Errorf("pay style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	totals := fmt.Sprintf("%d", totalsRow)
	if err := f.SetCellStyle(SheetName, "A"+totals, lastCol+totals, boldStyle); err != nil {
		return fmt.Errorf("apply totals style: %w", err)
	}
	pay := fmt.Sprintf("%d", totalsRow+1)
	if err := f.SetCellStyle(SheetName, "A"+pay, lastCol+pay, payStyle); err != nil {
		return fmt.Errorf("apply pay style: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
