package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
	"github.com/example/segura/internal/wire"
)

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new client or staff identity",
		Long:  `Register a new identity with credentials. Clients may self-register; staff registration requires a logged-in staff member.`,
	}

	cmd.AddCommand(registerClientCmd())
	cmd.AddCommand(registerStaffCmd())

	return cmd
}

func registerClientCmd() *cobra.Command {
	var (
		name     string
		address  string
		phone    string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "client [national-id]",
		Short: "Register a new client",
		Long: `Register a new client identity.

Anonymous callers may register themselves. A logged-in staff member may
register any client.

Examples:
  segura register client 12345678901 --name "Carlos Silva" --password secret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := wire.AuthService().RegisterClient(sessionContext(), primary.RegisterClientRequest{
				NationalID: args[0],
				Name:       name,
				Address:    address,
				Phone:      phone,
				Email:      email,
				Password:   password,
			})
			if err != nil {
				if errors.Is(err, secondary.ErrDuplicateIdentity) {
					return fmt.Errorf("a client with national ID %s already exists", args[0])
				}
				return fmt.Errorf("failed to register client: %w", err)
			}

			fmt.Printf("✓ Registered client %d: %s\n", client.ID, client.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Full name")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("password")

	return cmd
}

func registerStaffCmd() *cobra.Command {
	var (
		name       string
		jobTitle   string
		department string
		hiredOn    string
		salary     string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "staff [national-id]",
		Short: "Register a new staff member",
		Long: `Register a new staff identity. Requires a logged-in staff member.

Examples:
  segura register staff 11122233344 --name "Beatriz Lima" --title "Claims Analyst" --password secret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := wire.AuthService().RegisterStaff(sessionContext(), primary.RegisterStaffRequest{
				NationalID: args[0],
				Name:       name,
				JobTitle:   jobTitle,
				Department: department,
				HiredOn:    hiredOn,
				Salary:     salary,
				Password:   password,
			})
			if err != nil {
				if errors.Is(err, secondary.ErrDuplicateIdentity) {
					return fmt.Errorf("a staff member with national ID %s already exists", args[0])
				}
				return fmt.Errorf("failed to register staff: %w", err)
			}

			fmt.Printf("✓ Registered staff %d: %s\n", staff.ID, staff.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Full name")
	cmd.Flags().StringVar(&jobTitle, "title", "", "Job title")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringVar(&hiredOn, "hired-on", "", "Hire date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&salary, "salary", "", "Salary")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("password")

	return cmd
}
