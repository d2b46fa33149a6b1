package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/config"
	"github.com/example/segura/internal/ports/secondary"
	"github.com/example/segura/internal/wire"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	var passwordFlag string

	cmd := &cobra.Command{
		Use:   "login [national-id]",
		Short: "Log in as a client or staff member",
		Long: `Authenticate against the stored credentials and persist a session.

The national ID is checked against both identity kinds; an ID registered
as a client always logs in as the client.

Examples:
  segura login 12345678901 --password secret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nationalID := args[0]

			session, err := wire.AuthService().Login(cmd.Context(), nationalID, passwordFlag)
			if err != nil {
				if errors.Is(err, secondary.ErrInvalidCredentials) {
					return fmt.Errorf("invalid national ID or password")
				}
				return fmt.Errorf("login failed: %w", err)
			}

			if err := config.SaveSession(&config.Session{
				Role:       session.Role,
				NationalID: session.NationalID,
				Name:       session.Name,
				LoggedInAt: time.Now(),
			}); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			fmt.Printf("✓ Logged in as %s (%s)\n", session.Name, session.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&passwordFlag, "password", "p", "", "Account password")
	cmd.MarkFlagRequired("password")

	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored login session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearSession(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println("✓ Logged out")
			return nil
		},
	}
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current login session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := config.LoadSession()
			if err != nil {
				if errors.Is(err, config.ErrNoSession) {
					fmt.Println("Not logged in")
					return nil
				}
				return fmt.Errorf("failed to load session: %w", err)
			}

			fmt.Printf("Name: %s\n", session.Name)
			fmt.Printf("National ID: %s\n", session.NationalID)
			fmt.Printf("Role: %s\n", session.Role)
			fmt.Printf("Logged in: %s\n", session.LoggedInAt.Format(time.RFC3339))
			return nil
		},
	}
}
