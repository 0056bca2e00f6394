package timesheet

import "time"

// RawSession is one submission from a form or CLI flags. The time and break
// fields arrive as the strings the user typed; the Book validates and
// derives everything else.
type RawSession struct {
	Week           string
	Date           time.Time
	SignIn         string
	SignOut        string
	NumberOfBreaks string
}

// Entry is a persisted timesheet record. The derived fields (HoursWorked,
// PaidBreakHours, UnpaidBreakHours) are always recomputed from the raw
// fields on every write, so they can never go stale after an edit.
type Entry struct {
	ID               string
	Week             string
	Date             time.Time
	SignIn           string
	SignOut          string
	NumberOfBreaks   int
	HoursWorked      float64
	PaidBreakHours   float64
	UnpaidBreakHours float64
	SubmittedAt      time.Time
}

// Summary aggregates a set of entries.
type Summary struct {
	TotalHours float64
	TotalPay   float64
}

// OrderBy selects the sort key for List.
type OrderBy int

const (
	OrderByDate OrderBy = iota
	OrderByWeek
)
