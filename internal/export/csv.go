// Package export renders an ordered entry sequence plus its summary to
// CSV, JSON and XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

const (
	dateLayout      = "01/02/2006"
	submittedLayout = "01/02/2006 15:04"
)

var header = []string{
	"#", "Week", "Date", "Sign In", "Sign Out", "Breaks",
	"Paid Break (min)", "Unpaid Break (min)", "Hours Worked", "Submitted At",
}

func entryRow(i int, e timesheet.Entry) []string {
	return []string{
		strconv.Itoa(i + 1),
		e.Week,
		e.Date.Format(dateLayout),
		e.SignIn,
		e.SignOut,
		strconv.Itoa(e.NumberOfBreaks),
		strconv.Itoa(timecalc.BreakMinutes(e.PaidBreakHours)),
		strconv.Itoa(timecalc.BreakMinutes(e.UnpaidBreakHours)),
		timecalc.FormatHours(e.HoursWorked),
		e.SubmittedAt.Local().Format(submittedLayout),
	}
}

// ToCSV writes one row per entry followed by a totals row and a pay row.
func ToCSV(entries []timesheet.Entry, sum timesheet.Summary, currency, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}

	for i, e := range entries {
		if err := w.Write(entryRow(i, e)); err != nil {
			return err
		}
	}

	totals := []string{"", "", "", "", "TOTALS:", "", "", "", timecalc.FormatHours(sum.TotalHours), ""}
	if err := w.Write(totals); err != nil {
		return err
	}
	pay := []string{"", "", "", "", "WEEKLY PAY:", "", "", "", timecalc.FormatPay(currency, sum.TotalPay), ""}
	if err := w.Write(pay); err != nil {
		return err
	}

	return w.Error()
}
