package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

func newSummaryCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals across all entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := e.book.List(timesheet.OrderByDate)
			sum := e.book.Summarize(entries)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Entries:     %d\n", len(entries))
			fmt.Fprintf(out, "Total hours: %s\n", timecalc.FormatHours(sum.TotalHours))
			fmt.Fprintf(out, "Total pay:   %s\n", timecalc.FormatPay(e.cfg.Currency, sum.TotalPay))
			fmt.Fprintf(out, "Hourly rate: %s\n", timecalc.FormatPay(e.cfg.Currency, e.book.Rate()))
			return nil
		},
	}
}
