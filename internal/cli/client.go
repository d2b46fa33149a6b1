package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
	"github.com/example/segura/internal/wire"
)

// ClientCmd returns the client command
func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients (policy holders)",
		Long:  `Create, list, show, update, and delete client records.`,
	}

	cmd.AddCommand(clientCreateCmd())
	cmd.AddCommand(clientListCmd())
	cmd.AddCommand(clientShowCmd())
	cmd.AddCommand(clientUpdateCmd())
	cmd.AddCommand(clientDeleteCmd())

	return cmd
}

// parseID parses a positional record id argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func clientCreateCmd() *cobra.Command {
	var (
		name     string
		address  string
		phone    string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create [national-id]",
		Short: "Create a new client",
		Long: `Create a new client record with credentials.

Examples:
  segura client create 12345678901 --name "Carlos Silva" --password secret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := wire.ClientService().CreateClient(sessionContext(), primary.CreateClientRequest{
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
				return fmt.Errorf("failed to create client: %w", err)
			}

			fmt.Printf("✓ Created client %d: %s\n", client.ID, client.Name)
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

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible clients",
		Long:  `List the clients visible to the caller. Staff see everyone; a client sees only their own record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := wire.ClientService().ListClients(sessionContext())
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNATIONAL ID\tNAME\tPHONE\tEMAIL")
			fmt.Fprintln(w, "--\t-----------\t----\t-----\t-----")
			for _, c := range clients {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					c.ID, c.NationalID, c.Name, c.Phone, c.Email)
			}
			w.Flush()
			return nil
		},
	}
}

func clientShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [client-id]",
		Short: "Show client details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client")
			if err != nil {
				return err
			}

			client, err := wire.ClientService().GetClient(sessionContext(), id)
			if err != nil {
				return fmt.Errorf("client not found: %w", err)
			}

			fmt.Printf("Client: %d\n", client.ID)
			fmt.Printf("National ID: %s\n", client.NationalID)
			fmt.Printf("Name: %s\n", client.Name)
			if client.Address != "" {
				fmt.Printf("Address: %s\n", client.Address)
			}
			if client.Phone != "" {
				fmt.Printf("Phone: %s\n", client.Phone)
			}
			if client.Email != "" {
				fmt.Printf("Email: %s\n", client.Email)
			}
			fmt.Printf("Created: %s\n", client.CreatedAt)
			return nil
		},
	}
}

func clientUpdateCmd() *cobra.Command {
	var (
		name    string
		address string
		phone   string
		email   string
	)

	cmd := &cobra.Command{
		Use:   "update [client-id]",
		Short: "Update a client's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client")
			if err != nil {
				return err
			}

			client, err := wire.ClientService().UpdateClient(sessionContext(), primary.UpdateClientRequest{
				ClientID: id,
				Name:     name,
				Address:  address,
				Phone:    phone,
				Email:    email,
			})
			if err != nil {
				return fmt.Errorf("failed to update client: %w", err)
			}

			fmt.Printf("✓ Updated client %d: %s\n", client.ID, client.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Full name")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}

func clientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [client-id]",
		Short: "Delete a client",
		Long: `Delete a client record.

Deletion is refused while policies still reference the client.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "client")
			if err != nil {
				return err
			}

			if err := wire.ClientService().DeleteClient(sessionContext(), id); err != nil {
				var rb *secondary.ReferentialBlockError
				if errors.As(err, &rb) {
					return fmt.Errorf("client %d still has %d %s record(s); delete those first", id, rb.Count, rb.Dependents)
				}
				return fmt.Errorf("failed to delete client: %w", err)
			}

			fmt.Printf("✓ Deleted client %d\n", id)
			return nil
		},
	}
}
