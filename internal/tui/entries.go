package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

const formDateLayout = "2006-01-02"

type entriesModel struct {
	book     *timesheet.Book
	currency string
	width    int
	height   int

	entries []timesheet.Entry
	cursor  int
	orderBy timesheet.OrderBy

	formActive bool
	form       *huh.Form
	editingID  string // empty while creating

	// Form field pointers (survive value copies)
	formWeek    *string
	formDate    *string
	formSignIn  *string
	formSignOut *string
	formBreaks  *string
}

func newEntriesModel(book *timesheet.Book, currency string) entriesModel {
	week, date, signIn, signOut, breaks := "", "", "", "", "1"
	return entriesModel{
		book:        book,
		currency:    currency,
		formWeek:    &week,
		formDate:    &date,
		formSignIn:  &signIn,
		formSignOut: &signOut,
		formBreaks:  &breaks,
	}
}

func (m *entriesModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m entriesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return entriesDataMsg{}
	}
}

func (m entriesModel) update(msg tea.Msg) (entriesModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case entriesDataMsg:
		m.entries = m.book.List(m.orderBy)
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Order):
			if m.orderBy == timesheet.OrderByDate {
				m.orderBy = timesheet.OrderByWeek
			} else {
				m.orderBy = timesheet.OrderByDate
			}
			return m, m.refresh()
		case key.Matches(msg, keys.New):
			return m.showForm(nil)
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			if len(m.entries) > 0 {
				e := m.entries[m.cursor]
				return m.showForm(&e)
			}
		case key.Matches(msg, keys.Delete):
			if len(m.entries) > 0 {
				id := m.entries[m.cursor].ID
				if err := m.book.Delete(id); err != nil {
					return m, status(err.Error(), true)
				}
				return m, tea.Batch(m.refresh(), status("Entry deleted", false))
			}
		}
	}
	return m, nil
}

func (m entriesModel) showForm(editing *timesheet.Entry) (entriesModel, tea.Cmd) {
	if editing != nil {
		m.editingID = editing.ID
		*m.formWeek = editing.Week
		*m.formDate = editing.Date.Format(formDateLayout)
		*m.formSignIn = editing.SignIn
		*m.formSignOut = editing.SignOut
		*m.formBreaks = fmt.Sprintf("%d", editing.NumberOfBreaks)
	} else {
		m.editingID = ""
		*m.formWeek = ""
		*m.formDate = time.Now().Format(formDateLayout)
		*m.formSignIn = ""
		*m.formSignOut = ""
		*m.formBreaks = "1"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Week").Placeholder("e.g. Week 1, Jan 1-7").
				Value(m.formWeek).Validate(validateWeek),
			huh.NewInput().Title("Date").Placeholder(formDateLayout).
				Value(m.formDate).Validate(validateDate),
			huh.NewInput().Title("Sign In").Placeholder("09:00").
				Value(m.formSignIn).Validate(validateClock),
			huh.NewInput().Title("Sign Out").Placeholder("17:00").
				Value(m.formSignOut).Validate(validateClock),
			huh.NewInput().Title("Number of Breaks").Placeholder("1").
				Value(m.formBreaks).Validate(validateBreaks),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m entriesModel) updateForm(msg tea.Msg) (entriesModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m.submitForm()
	}

	return m, cmd
}

func (m entriesModel) submitForm() (entriesModel, tea.Cmd) {
	date, _ := time.Parse(formDateLayout, strings.TrimSpace(*m.formDate))
	raw := timesheet.RawSession{
		Week:           *m.formWeek,
		Date:           date,
		SignIn:         *m.formSignIn,
		SignOut:        *m.formSignOut,
		NumberOfBreaks: *m.formBreaks,
	}

	var (
		entry *timesheet.Entry
		err   error
	)
	if m.editingID != "" {
		entry, err = m.book.Update(m.editingID, raw)
	} else {
		entry, err = m.book.Create(raw)
	}
	if err != nil {
		return m, status(err.Error(), true)
	}

	verb := "recorded"
	if m.editingID != "" {
		verb = "updated"
	}
	text := fmt.Sprintf("Successfully %s %s hours for %s",
		verb, timecalc.FormatHours(entry.HoursWorked), entry.Week)
	return m, tea.Batch(m.refresh(), status(text, false))
}

func (m entriesModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Timesheet Entry")
		if m.editingID != "" {
			title = titleStyle.Render("Edit Timesheet Entry")
		}
		hint := mutedStyle.Render("Break policy: first break (30min) is paid, additional breaks are unpaid")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View(), "", hint)
		return activePanelStyle.Width(w).Render(content)
	}

	orderLabel := "date"
	if m.orderBy == timesheet.OrderByWeek {
		orderLabel = "week"
	}
	title := titleStyle.Render("Entries") + mutedStyle.Render(fmt.Sprintf("  (by %s)", orderLabel))

	if len(m.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No entries yet. Press n to log a session."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-16s %-12s %-7s %-7s %-7s %-9s %s",
		"Week", "Date", "In", "Out", "Breaks", "Hours", "Pay")))

	for i, e := range m.entries {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		pay := timecalc.FormatPay(m.currency, e.HoursWorked*m.book.Rate())
		rows = append(rows, style.Render(fmt.Sprintf("%s%-16s %-12s %-7s %-7s %-7d %-9s %s",
			cursor, e.Week, e.Date.Format(formDateLayout), e.SignIn, e.SignOut,
			e.NumberOfBreaks, timecalc.FormatHours(e.HoursWorked), pay)))
	}

	sum := m.book.Summarize(m.entries)
	rows = append(rows, "")
	rows = append(rows, successStyle.Render(fmt.Sprintf("  Total: %s hours   %s",
		timecalc.FormatHours(sum.TotalHours), timecalc.FormatPay(m.currency, sum.TotalPay))))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  o: order  x: export"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// --- Form validators (the inbound contract the form enforces before the
// Book re-validates) ---

func validateWeek(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("week is required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(formDateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if _, ok := timecalc.ParseClock(s); !ok {
		return errors.New("use HH:MM format")
	}
	return nil
}

func validateBreaks(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter number of breaks")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return errors.New("whole numbers only")
		}
	}
	return nil
}

func status(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}
