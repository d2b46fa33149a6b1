package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/core/validate"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
	"github.com/example/segura/internal/wire"
)

// PropertyCmd returns the property command
func PropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage insured properties",
		Long:  `Create, list, show, update, and delete insured property records.`,
	}

	cmd.AddCommand(propertyCreateCmd())
	cmd.AddCommand(propertyListCmd())
	cmd.AddCommand(propertyShowCmd())
	cmd.AddCommand(propertyUpdateCmd())
	cmd.AddCommand(propertyDeleteCmd())

	return cmd
}

func propertyCreateCmd() *cobra.Command {
	var (
		policyID int64
		address  string
		floor    int
		kind     string
		unit     int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new property",
		Long: fmt.Sprintf(`Attach an insured property to an existing policy.

At most one property may reference a policy. Kinds: %s.

Examples:
  segura property create --policy 1 --address "Rua das Flores 100" --kind standard --unit 101`, strings.Join(validate.PropertyKinds, ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := wire.PropertyService().CreateProperty(sessionContext(), primary.CreatePropertyRequest{
				PolicyID: policyID,
				Address:  address,
				Floor:    floor,
				Kind:     kind,
				Unit:     unit,
			})
			if err != nil {
				var ie *secondary.IntegrityError
				if errors.As(err, &ie) && ie.Field == "policy_id" {
					return fmt.Errorf("policy %d already has a property attached", policyID)
				}
				return fmt.Errorf("failed to create property: %w", err)
			}

			fmt.Printf("✓ Created property %d on policy %d: %s\n", property.ID, property.PolicyID, property.Address)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&policyID, "policy", "P", 0, "Owning policy id")
	cmd.Flags().StringVarP(&address, "address", "a", "", "Property address")
	cmd.Flags().IntVar(&floor, "floor", 0, "Floor number")
	cmd.Flags().StringVarP(&kind, "kind", "k", "standard", "Property kind")
	cmd.Flags().IntVar(&unit, "unit", 0, "Unit number")
	cmd.MarkFlagRequired("policy")
	cmd.MarkFlagRequired("address")

	return cmd
}

func propertyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := wire.PropertyService().ListProperties(sessionContext())
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}

			if len(properties) == 0 {
				fmt.Println("No properties found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tPOLICY\tADDRESS\tKIND\tFLOOR\tUNIT")
			fmt.Fprintln(w, "--\t------\t-------\t----\t-----\t----")
			for _, p := range properties {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%d\n",
					p.ID, p.PolicyID, p.Address, p.Kind, p.Floor, p.Unit)
			}
			w.Flush()
			return nil
		},
	}
}

func propertyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [property-id]",
		Short: "Show property details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "property")
			if err != nil {
				return err
			}

			property, err := wire.PropertyService().GetProperty(sessionContext(), id)
			if err != nil {
				return fmt.Errorf("property not found: %w", err)
			}

			fmt.Printf("Property: %d\n", property.ID)
			fmt.Printf("Policy: %d\n", property.PolicyID)
			fmt.Printf("Address: %s\n", property.Address)
			fmt.Printf("Kind: %s\n", property.Kind)
			fmt.Printf("Floor: %d\n", property.Floor)
			fmt.Printf("Unit: %d\n", property.Unit)
			fmt.Printf("Created: %s\n", property.CreatedAt)
			return nil
		},
	}
}

func propertyUpdateCmd() *cobra.Command {
	var (
		address string
		floor   int
		kind    string
		unit    int
	)

	cmd := &cobra.Command{
		Use:   "update [property-id]",
		Short: "Update a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "property")
			if err != nil {
				return err
			}

			req := primary.UpdatePropertyRequest{
				PropertyID: id,
				Address:    address,
				Kind:       kind,
			}
			// Floor and unit are only patched when the flag was given, so
			// floor 0 stays expressible.
			if cmd.Flags().Changed("floor") {
				req.Floor = &floor
			}
			if cmd.Flags().Changed("unit") {
				req.Unit = &unit
			}

			property, err := wire.PropertyService().UpdateProperty(sessionContext(), req)
			if err != nil {
				return fmt.Errorf("failed to update property: %w", err)
			}

			fmt.Printf("✓ Updated property %d\n", property.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Property address")
	cmd.Flags().IntVar(&floor, "floor", 0, "Floor number")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Property kind")
	cmd.Flags().IntVar(&unit, "unit", 0, "Unit number")

	return cmd
}

func propertyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [property-id]",
		Short: "Delete a property",
		Long: `Delete a property record.

Deletion is refused while incidents still reference the property.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "property")
			if err != nil {
				return err
			}

			if err := wire.PropertyService().DeleteProperty(sessionContext(), id); err != nil {
				var rb *secondary.ReferentialBlockError
				if errors.As(err, &rb) {
					return fmt.Errorf("property %d still has %d %s record(s); delete those first", id, rb.Count, rb.Dependents)
				}
				return fmt.Errorf("failed to delete property: %w", err)
			}

			fmt.Printf("✓ Deleted property %d\n", id)
			return nil
		},
	}
}
