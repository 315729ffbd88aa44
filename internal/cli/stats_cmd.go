package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfriesen/daybook/internal/cli/formatter"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/mfriesen/daybook/internal/service"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize saved daily results over a trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Stats.Range(context.Background(), days)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					return fmt.Errorf("sign in first: daybook login")
				}
				if errors.Is(err, service.ErrRemoteUnavailable) {
					return fmt.Errorf("daily results store unavailable, try again later")
				}
				return err
			}

			printSummary(summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of trailing days to summarize")

	return cmd
}

func printSummary(s *service.RangeSummary) {
	fmt.Println(formatter.Header(fmt.Sprintf("%s — %s",
		s.From.Format(domain.DateLayout), s.To.Format(domain.DateLayout))))

	if len(s.Days) == 0 {
		fmt.Println(formatter.Dim("No saved days in this range."))
		return
	}

	headers := []string{"DATE", "WORK", "BREAK"}
	rows := make([][]string, 0, len(s.Days))
	for _, d := range s.Days {
		rows = append(rows, []string{
			d.Date.Format(domain.DateLayout),
			formatter.FormatDuration(d.TotalWorkSeconds),
			formatter.FormatDuration(d.TotalBreakSeconds),
		})
	}
	fmt.Print(formatter.RenderTable(headers, rows))

	fmt.Println()
	fmt.Printf("Total   %s work, %s break\n",
		formatter.Bold(formatter.FormatDuration(s.TotalWorkSeconds)),
		formatter.FormatDuration(s.TotalBreakSeconds))
	fmt.Printf("Average %s per tracked day\n",
		formatter.FormatDuration(s.AvgWorkSeconds))
	if s.BestDay != nil {
		fmt.Printf("Best    %s (%s)\n",
			formatter.StyleGreen.Render(formatter.FormatDuration(s.BestDay.TotalWorkSeconds)),
			s.BestDay.Date.Format(domain.DateLayout))
	}
}
