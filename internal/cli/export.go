package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"paysheet/internal/export"
	"paysheet/internal/timesheet"
)

func newExportCommand(e *env) *cobra.Command {
	var (
		formatFlag string
		outFlag    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries to a file.",
		Long:  "export writes every recorded entry, plus totals, in csv, json or xlsx format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := e.book.List(timesheet.OrderByDate)
			if len(entries) == 0 {
				return fmt.Errorf("no entries to export")
			}
			sum := e.book.Summarize(entries)

			path := outFlag
			if path == "" {
				path = defaultExportPath(e.cfg.ExportDir, formatFlag)
			}

			var err error
			switch formatFlag {
			case "csv":
				err = export.ToCSV(entries, sum, e.cfg.Currency, path)
			case "json":
				err = export.ToJSON(entries, sum, path)
			case "xlsx":
				err = export.ToXLSX(entries, sum, e.cfg.Currency, path)
			default:
				return fmt.Errorf("unknown format %q (want csv, json or xlsx)", formatFlag)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "csv", "Export format: csv, json or xlsx")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output file path (default: derived from format)")

	return cmd
}

func defaultExportPath(dir, format string) string {
	if format == "xlsx" {
		return filepath.Join(dir, export.DefaultXLSXName)
	}
	name := fmt.Sprintf("paysheet_%s.%s", time.Now().Format("20060102"), format)
	return filepath.Join(dir, name)
}
