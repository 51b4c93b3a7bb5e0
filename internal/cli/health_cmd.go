package cli

import (
	"fmt"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/spf13/cobra"
)

func newComputeCmd(app *App) *cobra.Command {
	var userID, date string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Score every topic for a user and store the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			results, err := app.Health.ComputeForUser(cmd.Context(), userID, day)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"user_id": userID,
				"date":    day.Format(models.DateFormat),
				"topics":  results,
			})
		},
	}
	addUserFlag(cmd, &userID)
	addDateFlag(cmd, &date)
	return cmd
}

func newRecomputeAllCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "recompute-all",
		Short: "Recompute health snapshots for every user with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			n, err := app.Health.RecomputeAll(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d users for %s\n", n, day.Format(models.DateFormat))
			return nil
		},
	}
	addDateFlag(cmd, &date)
	return cmd
}

func newOverviewCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Summarize the latest stored health for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Health.Overview(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), overview)
		},
	}
	addUserFlag(cmd, &userID)
	return cmd
}

func newTopicCmd(app *App) *cobra.Command {
	var userID, topicID, date string

	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Show one topic's health and recent trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			detail, err := app.Health.TopicDetail(cmd.Context(), userID, topicID, day)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), detail)
		},
	}
	addUserFlag(cmd, &userID)
	addDateFlag(cmd, &date)
	cmd.Flags().StringVarP(&topicID, "topic", "t", "", "topic id")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newInsightsCmd(app *App) *cobra.Command {
	var userID, date string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Detect false security, blind spots and over-revision",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.resolveDate(date)
			if err != nil {
				return err
			}
			report, err := app.Health.Insights(cmd.Context(), userID, day)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	addUserFlag(cmd, &userID)
	addDateFlag(cmd, &date)
	return cmd
}
