// Package cli wires configuration, storage and the timesheet book into a
// Cobra command tree. Running the root command with no subcommand starts
// the TUI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paysheet/internal/config"
	"paysheet/internal/store"
	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
	"paysheet/internal/tui"
)

// env carries the shared dependencies every subcommand needs.
type env struct {
	cfg  config.Config
	book *timesheet.Book
	log  zerolog.Logger
}

// NewRootCommand creates the top-level Cobra command to host subcommands
// and the TUI launcher.
func NewRootCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paysheet",
		Short: "Track work sessions and calculate pay from your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := tui.NewApp(e.book, e.cfg.Currency, e.cfg.ExportDir)
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newAddCommand(e),
		newListCommand(e),
		newRemoveCommand(e),
		newSummaryCommand(e),
		newExportCommand(e),
	)

	return cmd
}

// ExecuteCommand loads the config, opens the store and executes the root
// command.
func ExecuteCommand() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}

	logger := openLogger(dbPath)

	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	book, err := timesheet.Open(s, timecalc.New(cfg.HourlyRate), logger)
	if err != nil {
		return fmt.Errorf("open timesheet: %w", err)
	}

	e := &env{cfg: cfg, book: book, log: logger}
	return NewRootCommand(e).Execute()
}

// Main is a helper used by main.go to keep wiring contained in one package.
func Main() {
	if err := ExecuteCommand(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger writes structured logs next to the database. Logging to
// stderr would corrupt the TUI, so failures fall back to a no-op logger.
func openLogger(dbPath string) zerolog.Logger {
	logPath := filepath.Join(filepath.Dir(dbPath), "paysheet.log")
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).With().Timestamp().Logger()
}
