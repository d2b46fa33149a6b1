package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/wire"
)

// StaffCmd returns the staff command
func StaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff members",
		Long:  `List, show, update, and delete staff records. New staff are created with 'segura register staff'.`,
	}

	cmd.AddCommand(staffListCmd())
	cmd.AddCommand(staffShowCmd())
	cmd.AddCommand(staffUpdateCmd())
	cmd.AddCommand(staffDeleteCmd())

	return cmd
}

func staffListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all staff members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := wire.StaffService().ListStaff(sessionContext())
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			if len(members) == 0 {
				fmt.Println("No staff found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNATIONAL ID\tNAME\tTITLE\tDEPARTMENT")
			fmt.Fprintln(w, "--\t-----------\t----\t-----\t----------")
			for _, s := range members {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					s.ID, s.NationalID, s.Name, s.JobTitle, s.Department)
			}
			w.Flush()
			return nil
		},
	}
}

func staffShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [staff-id]",
		Short: "Show staff details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "staff")
			if err != nil {
				return err
			}

			staff, err := wire.StaffService().GetStaff(sessionContext(), id)
			if err != nil {
				return fmt.Errorf("staff not found: %w", err)
			}

			fmt.Printf("Staff: %d\n", staff.ID)
			fmt.Printf("National ID: %s\n", staff.NationalID)
			fmt.Printf("Name: %s\n", staff.Name)
			if staff.JobTitle != "" {
				fmt.Printf("Title: %s\n", staff.JobTitle)
			}
			if staff.Department != "" {
				fmt.Printf("Department: %s\n", staff.Department)
			}
			if staff.HiredOn != "" {
				fmt.Printf("Hired: %s\n", staff.HiredOn)
			}
			if staff.Salary > 0 {
				fmt.Printf("Salary: %.2f\n", staff.Salary)
			}
			fmt.Printf("Created: %s\n", staff.CreatedAt)
			return nil
		},
	}
}

func staffUpdateCmd() *cobra.Command {
	var (
		name       string
		jobTitle   string
		department string
		salary     string
	)

	cmd := &cobra.Command{
		Use:   "update [staff-id]",
		Short: "Update a staff member's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "staff")
			if err != nil {
				return err
			}

			staff, err := wire.StaffService().UpdateStaff(sessionContext(), primary.UpdateStaffRequest{
				StaffID:    id,
				Name:       name,
				JobTitle:   jobTitle,
				Department: department,
				Salary:     salary,
			})
			if err != nil {
				return fmt.Errorf("failed to update staff: %w", err)
			}

			fmt.Printf("✓ Updated staff %d: %s\n", staff.ID, staff.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Full name")
	cmd.Flags().StringVar(&jobTitle, "title", "", "Job title")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringVar(&salary, "salary", "", "Salary")

	return cmd
}

func staffDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [staff-id]",
		Short: "Delete a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "staff")
			if err != nil {
				return err
			}

			if err := wire.StaffService().DeleteStaff(sessionContext(), id); err != nil {
				return fmt.Errorf("failed to delete staff: %w", err)
			}

			fmt.Printf("✓ Deleted staff %d\n", id)
			return nil
		},
	}
}
