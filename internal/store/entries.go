package store

import (
	"fmt"
	"time"

	"paysheet/internal/timesheet"
)

const dateLayout = "2006-01-02"

// Insert writes a new entry row.
func (s *Store) Insert(e timesheet.Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO timesheet_entries
		 (id, week, date, sign_in, sign_out, number_of_breaks, hours_worked, paid_break_hours, unpaid_break_hours, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Week, e.Date.Format(dateLayout), e.SignIn, e.SignOut, e.NumberOfBreaks,
		e.HoursWorked, e.PaidBreakHours, e.UnpaidBreakHours, e.SubmittedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Replace overwrites every column of the row with the given id.
func (s *Store) Replace(id string, e timesheet.Entry) error {
	res, err := s.db.Exec(
		`UPDATE timesheet_entries
		 SET week = ?, date = ?, sign_in = ?, sign_out = ?, number_of_breaks = ?,
		     hours_worked = ?, paid_break_hours = ?, unpaid_break_hours = ?, submitted_at = ?
		 WHERE id = ?`,
		e.Week, e.Date.Format(dateLayout), e.SignIn, e.SignOut, e.NumberOfBreaks,
		e.HoursWorked, e.PaidBreakHours, e.UnpaidBreakHours, e.SubmittedAt.Format(time.RFC3339Nano),
		id,
	)
	if err != nil {
		return fmt.Errorf("replace entry %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("replace entry %s: no such row", id)
	}
	return nil
}

// Remove deletes the row with the given id.
func (s *Store) Remove(id string) error {
	res, err := s.db.Exec(`DELETE FROM timesheet_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove entry %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("remove entry %s: no such row", id)
	}
	return nil
}

// SelectAll returns every entry in submission order.
func (s *Store) SelectAll() ([]timesheet.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, week, date, sign_in, sign_out, number_of_breaks,
		        hours_worked, paid_break_hours, unpaid_break_hours, submitted_at
		 FROM timesheet_entries ORDER BY submitted_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		var date, submittedAt string
		if err := rows.Scan(&e.ID, &e.Week, &date, &e.SignIn, &e.SignOut, &e.NumberOfBreaks,
			&e.HoursWorked, &e.PaidBreakHours, &e.UnpaidBreakHours, &submittedAt); err != nil {
			return nil, err
		}
		e.Date, _ = time.Parse(dateLayout, date)
		e.SubmittedAt, _ = time.Parse(time.RFC3339Nano, submittedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
