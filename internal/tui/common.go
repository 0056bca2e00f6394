package tui

// viewState represents the currently active view.
type viewState int

const (
	viewEntries viewState = iota
	viewReport
)

var viewNames = []string{"Entries", "Report"}

// --- Messages ---

type entriesDataMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}
