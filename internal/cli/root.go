package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/services"
	"github.com/spf13/cobra"
)

// App holds the services the commands run against.
type App struct {
	Health  services.HealthService
	Reviews services.WeeklyReviewService
	// Now supplies the default --date.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCmd creates the top-level "healthctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "Compute and inspect topic mastery health",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newComputeCmd(app),
		newRecomputeAllCmd(app),
		newOverviewCmd(app),
		newTopicCmd(app),
		newInsightsCmd(app),
		newWeeklyCmd(app),
	)
	return root
}

// addUserFlag registers the required --user flag.
func addUserFlag(cmd *cobra.Command, userID *string) {
	cmd.Flags().StringVarP(userID, "user", "u", "", "user id")
	_ = cmd.MarkFlagRequired("user")
}

func addDateFlag(cmd *cobra.Command, date *string) {
	cmd.Flags().StringVarP(date, "date", "d", "", "reference date (YYYY-MM-DD, default today)")
}

// resolveDate parses raw or falls back to today.
func (a *App) resolveDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return a.now(), nil
	}
	d, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError("date", "expected YYYY-MM-DD")
	}
	return d, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
