package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/mfriesen/daybook/internal/cli/formatter"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var userID string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in so daily totals can be saved under your user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("pass --email, or run in an interactive terminal")
				}
				if err := loginForm(&email); err != nil {
					return err
				}
			}

			email = strings.TrimSpace(email)
			if err := validateEmail(email); err != nil {
				return err
			}
			if userID == "" {
				userID = uuid.NewString()
			}

			identity := domain.Identity{UserID: userID, Email: email}
			if err := app.Auth.SignIn(identity); err != nil {
				return err
			}

			fmt.Printf("Signed in as %s\n", formatter.Bold(email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to sign in with")
	cmd.Flags().StringVar(&userID, "user-id", "", "Explicit user id (defaults to a generated one)")

	return cmd
}

func loginForm(email *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(validateEmail).
				Value(email),
		),
	)
	return form.Run()
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Auth.Current(); !ok {
				fmt.Println(formatter.Dim("Not signed in."))
				return nil
			}
			if err := app.Auth.SignOut(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, ok := app.Auth.Current()
			if !ok {
				fmt.Println(formatter.Dim("Not signed in."))
				return nil
			}
			fmt.Printf("%s (%s)\n", formatter.Bold(identity.Email), formatter.Dim(identity.UserID))
			return nil
		},
	}
}
