package cli

import (
	"fmt"

	"sauna-reservation/internal/pkg/config"
	"sauna-reservation/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func newClubSaunaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "club-sauna",
		Short: "Club sauna season helpers",
	}

	var timeZone string
	eligible := &cobra.Command{
		Use:     "eligible <date>",
		Short:   "Tell whether a club sauna may be held on a date",
		Example: "  saunactl club-sauna eligible 2025-07-04",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := config.ScheduleConfig{TimeZone: timeZone}.Location()
			if err != nil {
				return err
			}
			view, err := queries.NewClubSaunaQueries(loc).Eligibility(args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
			}

			out := cmd.OutOrStdout()
			if !view.Eligible {
				fmt.Fprintf(out, "%s: not eligible\n", view.Date)
				return nil
			}
			fmt.Fprintf(out, "%s: eligible (%s season)\n", view.Date, view.Season)
			return nil
		},
	}
	eligible.Flags().StringVar(&timeZone, "tz", "Local", "time zone the date is interpreted in")

	cmd.AddCommand(eligible)
	return cmd
}
