package cli

import "github.com/spf13/cobra"

func newWeeklyCmd(app *App) *cobra.Command {
	var (
		userID, date string
		refresh      bool
	)

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Show the weekly review for the week ending on or before --date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			get := app.Reviews.Get
			if refresh {
				get = app.Reviews.Compute
			}
			review, err := get(cmd.Context(), userID, day)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), review)
		},
	}
	addUserFlag(cmd, &userID)
	addDateFlag(cmd, &date)
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a stored review exists")
	return cmd
}
