package cli

import (
	"fmt"
	"time"

	"github.com/mfriesen/daybook/internal/auth"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/mfriesen/daybook/internal/service"
	"github.com/mfriesen/daybook/internal/timer"
	"github.com/spf13/cobra"
)

// App holds references to the services and collaborators used by CLI
// commands.
type App struct {
	Sessions service.SessionService
	Sync     service.SyncService
	Stats    service.StatsService
	Auth     *auth.FileProvider
	Engine   *timer.Engine

	// IsInteractive reports whether stdin is a terminal; the timer view
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "daybook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daybook",
		Short: "Track work hours and reconcile them into daily totals",
	}

	root.AddCommand(
		newTimerCmd(app),
		newDayCmd(app),
		newSessionsCmd(app),
		newStatsCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
	)

	return root
}

// resolveDate parses a --date flag value, defaulting to today when empty.
func resolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation(domain.DateLayout, flag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", flag)
	}
	return d, nil
}
