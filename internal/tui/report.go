package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

type reportModel struct {
	book     *timesheet.Book
	currency string
	width    int
	height   int

	entries []timesheet.Entry
	chart   barchart.Model
}

func newReportModel(book *timesheet.Book, currency string) reportModel {
	return reportModel{
		book:     book,
		currency: currency,
		chart:    barchart.New(60, 12),
	}
}

func (r *reportModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reportModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return entriesDataMsg{}
	}
}

func (r reportModel) update(msg tea.Msg) (reportModel, tea.Cmd) {
	switch msg.(type) {
	case entriesDataMsg:
		r.entries = r.book.List(timesheet.OrderByDate)
		r.buildChart()
		return r, nil
	}
	return r, nil
}

// buildChart renders one bar per calendar day, hours worked stacked across
// the entries logged for that day.
func (r *reportModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	byDay := make(map[string]float64)
	var days []string
	for _, e := range r.entries {
		day := e.Date.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] += e.HoursWorked
	}
	sort.Strings(days)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for _, day := range days {
		label := day[5:] // MM-DD
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "hours", Value: byDay[day], Style: barStyle},
			},
		})
	}

	if len(bars) == 0 {
		bars = []barchart.BarData{
			{Label: "", Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}},
		}
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportModel) view() string {
	w := r.width - 4

	header := titleStyle.Render("Hours per Day")

	if len(r.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No entries to report on yet."),
		)
		return panelStyle.Width(w).Render(content)
	}

	sum := r.book.Summarize(r.entries)
	totals := lipgloss.JoinVertical(lipgloss.Left,
		successStyle.Render(fmt.Sprintf("  Total hours: %s", timecalc.FormatHours(sum.TotalHours))),
		successStyle.Render(fmt.Sprintf("  Total pay:   %s", timecalc.FormatPay(r.currency, sum.TotalPay))),
		mutedStyle.Render(fmt.Sprintf("  Rate:        %s/hour", timecalc.FormatPay(r.currency, r.book.Rate()))),
	)

	weekTable := r.renderWeekTable()

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", totals, "", weekTable,
		),
	)
}

func (r reportModel) renderWeekTable() string {
	byWeek := make(map[string]float64)
	var weeks []string
	for _, e := range r.entries {
		if _, seen := byWeek[e.Week]; !seen {
			weeks = append(weeks, e.Week)
		}
		byWeek[e.Week] += e.HoursWorked
	}
	sort.Strings(weeks)

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-20s %10s %12s", "Week", "Hours", "Pay")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", 44)))
	for _, week := range weeks {
		hours := byWeek[week]
		rows = append(rows, fmt.Sprintf("  %-20s %10s %12s",
			week, timecalc.FormatHours(hours), timecalc.FormatPay(r.currency, hours*r.book.Rate())))
	}
	return strings.Join(rows, "\n")
}
