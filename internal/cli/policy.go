package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
	"github.com/example/segura/internal/wire"
)

// PolicyCmd returns the policy command
func PolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Manage insurance policies",
		Long:  `Create, list, show, update, and delete policy records.`,
	}

	cmd.AddCommand(policyCreateCmd())
	cmd.AddCommand(policyListCmd())
	cmd.AddCommand(policyShowCmd())
	cmd.AddCommand(policyUpdateCmd())
	cmd.AddCommand(policyDeleteCmd())

	return cmd
}

func policyCreateCmd() *cobra.Command {
	var (
		clientID     int64
		contractDate string
		contact      string
		signature    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new policy",
		Long: `Create a policy under an existing client.

A client may only create policies under their own client record.

Examples:
  segura policy create --client 1 --date 15/01/2024 --contact "11 91234-5678"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := wire.PolicyService().CreatePolicy(sessionContext(), primary.CreatePolicyRequest{
				ClientID:     clientID,
				ContractDate: contractDate,
				Contact:      contact,
				Signature:    signature,
			})
			if err != nil {
				return fmt.Errorf("failed to create policy: %w", err)
			}

			fmt.Printf("✓ Created policy %d for client %d (contract %s)\n", policy.ID, policy.ClientID, policy.ContractDate)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&clientID, "client", "c", 0, "Owning client id")
	cmd.Flags().StringVarP(&contractDate, "date", "d", "", "Contract date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact details")
	cmd.Flags().StringVar(&signature, "signature", "", "Signature reference")
	cmd.MarkFlagRequired("client")
	cmd.MarkFlagRequired("date")

	return cmd
}

func policyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible policies",
		Long:  `List the policies visible to the caller. Staff see everything; a client sees only their own policies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, err := wire.PolicyService().ListPolicies(sessionContext())
			if err != nil {
				return fmt.Errorf("failed to list policies: %w", err)
			}

			if len(policies) == 0 {
				fmt.Println("No policies found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tCONTRACT DATE\tCONTACT")
			fmt.Fprintln(w, "--\t------\t-------------\t-------")
			for _, p := range policies {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n",
					p.ID, p.ClientID, p.ContractDate, p.Contact)
			}
			w.Flush()
			return nil
		},
	}
}

func policyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [policy-id]",
		Short: "Show policy details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "policy")
			if err != nil {
				return err
			}

			policy, err := wire.PolicyService().GetPolicy(sessionContext(), id)
			if err != nil {
				return fmt.Errorf("policy not found: %w", err)
			}

			fmt.Printf("Policy: %d\n", policy.ID)
			fmt.Printf("Client: %d\n", policy.ClientID)
			fmt.Printf("Contract date: %s\n", policy.ContractDate)
			if policy.Contact != "" {
				fmt.Printf("Contact: %s\n", policy.Contact)
			}
			if policy.Signature != "" {
				fmt.Printf("Signature: %s\n", policy.Signature)
			}
			fmt.Printf("Created: %s\n", policy.CreatedAt)
			return nil
		},
	}
}

func policyUpdateCmd() *cobra.Command {
	var (
		contractDate string
		contact      string
		signature    string
	)

	cmd := &cobra.Command{
		Use:   "update [policy-id]",
		Short: "Update a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "policy")
			if err != nil {
				return err
			}

			policy, err := wire.PolicyService().UpdatePolicy(sessionContext(), primary.UpdatePolicyRequest{
				PolicyID:     id,
				ContractDate: contractDate,
				Contact:      contact,
				Signature:    signature,
			})
			if err != nil {
				return fmt.Errorf("failed to update policy: %w", err)
			}

			fmt.Printf("✓ Updated policy %d\n", policy.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contractDate, "date", "d", "", "Contract date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact details")
	cmd.Flags().StringVar(&signature, "signature", "", "Signature reference")

	return cmd
}

func policyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [policy-id]",
		Short: "Delete a policy",
		Long: `Delete a policy record.

Deletion is refused while a property still references the policy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "policy")
			if err != nil {
				return err
			}

			if err := wire.PolicyService().DeletePolicy(sessionContext(), id); err != nil {
				var rb *secondary.ReferentialBlockError
				if errors.As(err, &rb) {
					return fmt.Errorf("policy %d still has %d %s record(s); delete those first", id, rb.Count, rb.Dependents)
				}
				return fmt.Errorf("failed to delete policy: %w", err)
			}

			fmt.Printf("✓ Deleted policy %d\n", id)
			return nil
		},
	}
}
