package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/wire"
)

// IncidentCmd returns the incident command
func IncidentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incident",
		Short: "Manage incident claims",
		Long:  `Create, list, show, update, and delete incident claim records.`,
	}

	cmd.AddCommand(incidentCreateCmd())
	cmd.AddCommand(incidentListCmd())
	cmd.AddCommand(incidentShowCmd())
	cmd.AddCommand(incidentUpdateCmd())
	cmd.AddCommand(incidentDeleteCmd())

	return cmd
}

func incidentCreateCmd() *cobra.Command {
	var (
		propertyID  int64
		description string
		occurredOn  string
		amount      string
		kind        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new incident",
		Long: `Record an incident claim against an existing property.

Examples:
  segura incident create --property 1 --description "Kitchen fire" --date 03/02/2024 --amount 50000 --kind fire`,
		RunE: func(cmd *cobra.Command, args []string) error {
			incident, err := wire.IncidentService().CreateIncident(sessionContext(), primary.CreateIncidentRequest{
				PropertyID:  propertyID,
				Description: description,
				OccurredOn:  occurredOn,
				Amount:      amount,
				Kind:        kind,
			})
			if err != nil {
				return fmt.Errorf("failed to create incident: %w", err)
			}

			fmt.Printf("✓ Recorded incident %d on property %d (%.2f)\n", incident.ID, incident.PropertyID, incident.Amount)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&propertyID, "property", "P", 0, "Affected property id")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Incident description")
	cmd.Flags().StringVar(&occurredOn, "date", "", "Occurrence date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&amount, "amount", "", "Claimed amount")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Incident kind (fire, flood, theft, ...)")
	cmd.MarkFlagRequired("property")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func incidentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible incidents",
		RunE: func(cmd *cobra.Command, args []string) error {
			incidents, err := wire.IncidentService().ListIncidents(sessionContext())
			if err != nil {
				return fmt.Errorf("failed to list incidents: %w", err)
			}

			if len(incidents) == 0 {
				fmt.Println("No incidents found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tPROPERTY\tDATE\tKIND\tAMOUNT\tDESCRIPTION")
			fmt.Fprintln(w, "--\t--------\t----\t----\t------\t-----------")
			for _, i := range incidents {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%.2f\t%s\n",
					i.ID, i.PropertyID, i.OccurredOn, i.Kind, i.Amount, i.Description)
			}
			w.Flush()
			return nil
		},
	}
}

func incidentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [incident-id]",
		Short: "Show incident details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "incident")
			if err != nil {
				return err
			}

			incident, err := wire.IncidentService().GetIncident(sessionContext(), id)
			if err != nil {
				return fmt.Errorf("incident not found: %w", err)
			}

			fmt.Printf("Incident: %d\n", incident.ID)
			fmt.Printf("Property: %d\n", incident.PropertyID)
			fmt.Printf("Occurred: %s\n", incident.OccurredOn)
			if incident.Kind != "" {
				fmt.Printf("Kind: %s\n", incident.Kind)
			}
			fmt.Printf("Amount: %.2f\n", incident.Amount)
			fmt.Printf("Description: %s\n", incident.Description)
			fmt.Printf("Created: %s\n", incident.CreatedAt)
			return nil
		},
	}
}

func incidentUpdateCmd() *cobra.Command {
	var (
		description string
		occurredOn  string
		amount      string
		kind        string
	)

	cmd := &cobra.Command{
		Use:   "update [incident-id]",
		Short: "Update an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "incident")
			if err != nil {
				return err
			}

			incident, err := wire.IncidentService().UpdateIncident(sessionContext(), primary.UpdateIncidentRequest{
				IncidentID:  id,
				Description: description,
				OccurredOn:  occurredOn,
				Amount:      amount,
				Kind:        kind,
			})
			if err != nil {
				return fmt.Errorf("failed to update incident: %w", err)
			}

			fmt.Printf("✓ Updated incident %d\n", incident.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Incident description")
	cmd.Flags().StringVar(&occurredOn, "date", "", "Occurrence date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&amount, "amount", "", "Claimed amount")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Incident kind")

	return cmd
}

func incidentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [incident-id]",
		Short: "Delete an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "incident")
			if err != nil {
				return err
			}

			if err := wire.IncidentService().DeleteIncident(sessionContext(), id); err != nil {
				return fmt.Errorf("failed to delete incident: %w", err)
			}

			fmt.Printf("✓ Deleted incident %d\n", id)
			return nil
		},
	}
}
