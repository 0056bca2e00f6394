package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paysheet/internal/timecalc"
)

func newListCommand(e *env) *cobra.Command {
	var byFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all recorded entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := resolveOrder(byFlag)
			if err != nil {
				return err
			}

			entries := e.book.List(order)
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries recorded yet.")
				return nil
			}

			fmt.Fprintf(out, "%-38s %-16s %-12s %-6s %-6s %-7s %-8s %s\n",
				"ID", "Week", "Date", "In", "Out", "Breaks", "Hours", "Pay")
			for _, entry := range entries {
				fmt.Fprintf(out, "%-38s %-16s %-12s %-6s %-6s %-7d %-8s %s\n",
					entry.ID, entry.Week, entry.Date.Format(dateLayout),
					entry.SignIn, entry.SignOut, entry.NumberOfBreaks,
					timecalc.FormatHours(entry.HoursWorked),
					timecalc.FormatPay(e.cfg.Currency, entry.HoursWorked*e.book.Rate()))
			}

			sum := e.book.Summarize(entries)
			fmt.Fprintf(out, "\nTotal: %s hours, %s\n",
				timecalc.FormatHours(sum.TotalHours),
				timecalc.FormatPay(e.cfg.Currency, sum.TotalPay))
			return nil
		},
	}

	cmd.Flags().StringVar(&byFlag, "by", "date", "Sort order: date or week")

	return cmd
}
