package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paysheet/internal/timecalc"
	"paysheet/internal/timesheet"
)

func newAddCommand(e *env) *cobra.Command {
	var (
		weekFlag    string
		dateFlag    string
		signInFlag  string
		signOutFlag string
		breaksFlag  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a work session.",
		Long:  "add validates the session, computes worked hours under the break policy and stores the entry.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			entry, err := e.book.Create(timesheet.RawSession{
				Week:           weekFlag,
				Date:           date,
				SignIn:         signInFlag,
				SignOut:        signOutFlag,
				NumberOfBreaks: breaksFlag,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s hours for %s (%s)\n",
				timecalc.FormatHours(entry.HoursWorked),
				entry.Week,
				timecalc.FormatPay(e.cfg.Currency, entry.HoursWorked*e.book.Rate()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&weekFlag, "week", "w", "", "Week label, e.g. \"Week 1\"")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Session date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&signInFlag, "in", "i", "", "Sign-in time in HH:MM")
	cmd.Flags().StringVarP(&signOutFlag, "out", "o", "", "Sign-out time in HH:MM")
	cmd.Flags().StringVarP(&breaksFlag, "breaks", "b", "1", "Number of breaks taken")

	return cmd
}
