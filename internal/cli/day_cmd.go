package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mfriesen/daybook/internal/cli/formatter"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/mfriesen/daybook/internal/service"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show or save a day's totals",
	}

	cmd.AddCommand(
		newDayShowCmd(app),
		newDaySaveCmd(app),
	)

	return cmd
}

func newDayShowCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show tracked totals for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			if domain.SameDay(day, time.Now()) {
				return showToday(ctx, app, day)
			}
			return showHistory(ctx, app, day)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to show (YYYY-MM-DD, default today)")

	return cmd
}

// showToday renders the live session list; today never hits the remote store.
func showToday(ctx context.Context, app *App, day time.Time) error {
	work, brk := app.Sessions.DayTotals(ctx, day)
	sessions := app.Sessions.ListByDate(ctx, day)

	content := fmt.Sprintf("Work   %s\nBreak  %s\n\n%s",
		formatter.StyleGreen.Render(formatter.FormatClock(work)),
		formatter.StylePurple.Render(formatter.FormatClock(brk)),
		renderSessionTable(sessions),
	)
	fmt.Println(formatter.RenderBox(formatter.HumanDate(day), content))
	return nil
}

// showHistory reads the saved aggregate; a failed or empty fetch degrades
// to "no data" rather than blocking.
func showHistory(ctx context.Context, app *App, day time.Time) error {
	result, err := app.Sync.FetchDay(ctx, day)
	if err != nil {
		if errors.Is(err, service.ErrRemoteUnavailable) {
			fmt.Println(formatter.Dim("Could not reach the daily results store."))
			fmt.Println(formatter.RenderBox(formatter.HumanDate(day), "No data for this day."))
			return nil
		}
		return err
	}
	if !result.Found {
		fmt.Println(formatter.RenderBox(formatter.HumanDate(day), "No data for this day."))
		return nil
	}

	content := fmt.Sprintf("Work   %s\nBreak  %s",
		formatter.StyleGreen.Render(formatter.FormatClock(result.Aggregate.TotalWorkSeconds)),
		formatter.StylePurple.Render(formatter.FormatClock(result.Aggregate.TotalBreakSeconds)),
	)
	fmt.Println(formatter.RenderBox(formatter.HumanDate(day), content))
	return nil
}

func newDaySaveCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the day's cumulative totals to the daily results store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			work, brk := app.Sessions.DayTotals(ctx, day)
			result, err := app.Sync.SaveDay(ctx, day, work, brk)
			if err != nil {
				return saveErrorMessage(err)
			}

			fmt.Printf("Saved %s: %s work, %s break\n",
				result.Date.Format(domain.DateLayout),
				formatter.FormatDuration(result.WorkSeconds),
				formatter.FormatDuration(result.BreakSeconds),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to save (YYYY-MM-DD, default today)")

	return cmd
}

// saveErrorMessage maps save failures to the short user-facing messages the
// command surfaces; the raw cause stays in the wrapped chain.
func saveErrorMessage(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return fmt.Errorf("sign in first: daybook login")
	case errors.Is(err, service.ErrInvalidDate):
		return fmt.Errorf("cannot save a future date")
	case errors.Is(err, service.ErrNoData):
		return fmt.Errorf("no tracked work time to save")
	case errors.Is(err, service.ErrRemoteUnavailable):
		return fmt.Errorf("daily results store unavailable, try again later")
	default:
		return err
	}
}

func renderSessionTable(sessions []domain.WorkSession) string {
	if len(sessions) == 0 {
		return formatter.Dim("No sessions recorded.")
	}

	headers := []string{"ID", "START", "END", "WORK", "BREAK"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			formatter.TruncID(s.ID),
			formatter.ClockTime(s.StartedAt),
			formatter.ClockTime(s.EndedAt),
			formatter.FormatDuration(s.WorkSeconds),
			formatter.FormatDuration(s.BreakSeconds),
		})
	}
	return formatter.RenderTable(headers, rows)
}
