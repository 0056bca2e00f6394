package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	TotalHours float64     `json:"total_hours"`
	TotalPay   float64     `json:"total_pay"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID             string  `json:"id"`
	Week           string  `json:"week"`
	Date           string  `json:"date"`
	SignIn         string  `json:"sign_in"`
	SignOut        string  `json:"sign_out"`
	NumberOfBreaks int     `json:"number_of_breaks"`
	PaidBreakMin   int     `json:"paid_break_minutes"`
	UnpaidBreakMin int     `json:"unpaid_break_minutes"`
	HoursWorked    float64 `json:"hours_worked"`
	SubmittedAt    string  `json:"submitted_at"`
}

// ToJSON writes the entries and summary as pretty-printed JSON.
func ToJSON(entries []timesheet.Entry, sum timesheet.Summary, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
		TotalHours: sum.TotalHours,
		TotalPay:   sum.TotalPay,
	}

	for _, e := range entries {
		out.Entries = append(out.Entries, jsonEntry{
			ID:             e.ID,
			Week:           e.Week,
			Date:           e.Date.Format("2006-01-02"),
			SignIn:         e.SignIn,
			SignOut:        e.SignOut,
			NumberOfBreaks: e.NumberOfBreaks,
			PaidBreakMin:   timecalc.BreakMinutes(e.PaidBreakHours),
			UnpaidBreakMin: timecalc.BreakMinutes(e.UnpaidBreakHours),
			HoursWorked:    e.HoursWorked,
			SubmittedAt:    e.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
