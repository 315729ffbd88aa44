package cli

import (
	"context"
	"fmt"

	"github.com/mfriesen/daybook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List or merge a day's recorded sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsMergeCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions recorded on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			sessions := app.Sessions.ListByDate(context.Background(), day)
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("No sessions recorded."))
				return nil
			}
			fmt.Print(renderSessionTable(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to list (YYYY-MM-DD, default today)")

	return cmd
}

func newSessionsMergeCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Collapse a day's sessions into a single one",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			merged, err := app.Sessions.MergeDay(context.Background(), day)
			if err != nil {
				return err
			}
			if merged == nil {
				fmt.Println(formatter.Dim("Nothing to merge."))
				return nil
			}

			fmt.Printf("Merged into %s: %s work, %s break\n",
				formatter.TruncID(merged.ID),
				formatter.FormatDuration(merged.WorkSeconds),
				formatter.FormatDuration(merged.BreakSeconds),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to merge (YYYY-MM-DD, default today)")

	return cmd
}
