// Package tui is the interactive terminal front end: an entry form, the
// entry list and an hours-per-day report over a timesheet Book.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paysheet/internal/export"
	"paysheet/internal/timesheet"
)

var exportFormats = []string{"CSV", "JSON", "XLSX"}

// App is the root Bubble Tea model.
type App struct {
	book      *timesheet.Book
	currency  string
	exportDir string
	width     int
	height    int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	entries entriesModel
	report  reportModel

	help        help.Model
	status      string
	statusError bool
}

func NewApp(book *timesheet.Book, currency, exportDir string) App {
	h := help.New()
	h.ShowAll = false

	return App{
		book:       book,
		currency:   currency,
		exportDir:  exportDir,
		activeView: viewEntries,
		entries:    newEntriesModel(book, currency),
		report:     newReportModel(book, currency),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.entries.refresh()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.entries.setSize(a.width, contentHeight)
		a.report.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If the form is capturing input, delegate first.
		if a.entries.formActive {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewEntries
			return a, a.entries.refresh()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewReport
			return a, a.report.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 2
			if a.activeView == viewEntries {
				return a, a.entries.refresh()
			}
			return a, a.report.refresh()
		}

	case statusMsg:
		a.status = msg.text
		a.statusError = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusError = false
		a.exportPicking = false
		return a, nil

	case entriesDataMsg:
		// Keep both views current; List is cheap and restartable.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.entries, cmd = a.entries.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		a.report, cmd = a.report.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewEntries:
		a.entries, cmd = a.entries.update(msg)
	case viewReport:
		a.report, cmd = a.report.update(msg)
	}
	return a, cmd
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
		return a, nil
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
		return a, nil
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
		return a, nil
	case key.Matches(msg, keys.Enter):
		format := exportFormats[a.exportCursor]
		return a, a.runExport(format)
	}
	return a, nil
}

func (a App) runExport(format string) tea.Cmd {
	book := a.book
	currency := a.currency
	dir := a.exportDir
	return func() tea.Msg {
		entries := book.List(timesheet.OrderByDate)
		if len(entries) == 0 {
			return statusMsg{text: "No entries to export", isError: true}
		}
		sum := book.Summarize(entries)

		stamp := time.Now().Format("20060102")
		var path string
		var err error
		switch format {
		case "CSV":
			path = filepath.Join(dir, fmt.Sprintf("paysheet_%s.csv", stamp))
			err = export.ToCSV(entries, sum, currency, path)
		case "JSON":
			path = filepath.Join(dir, fmt.Sprintf("paysheet_%s.json", stamp))
			err = export.ToJSON(entries, sum, path)
		default:
			path = filepath.Join(dir, export.DefaultXLSXName)
			err = export.ToXLSX(entries, sum, currency, path)
		}
		if err != nil {
			return statusMsg{text: "Export failed: " + err.Error(), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewEntries:
		content = a.entries.view()
	case viewReport:
		content = a.report.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("paysheet")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusError {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	left := footerStyle.Render(helpView)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
