package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/config"
	"github.com/example/segura/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the segura database",
		Long:  `Initialize the segura database at ~/.segura/segura.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing segura database at %s\n", dbPath)

			if _, err := config.Dir(); err != nil {
				return err
			}
			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  segura register client <national-id> --name \"...\" --password <pw>")
			fmt.Println("  segura login <national-id> --password <pw>")

			return nil
		},
	}
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load development fixtures",
		Long: `Load development fixtures into the database: two clients, a policy with
its property and incident, and a staff account. All fixture logins use the
password "segura-dev".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Fixtures loaded")
			fmt.Println()
			fmt.Println("Try:")
			fmt.Println("  segura login 11122233344 --password segura-dev   # staff")
			fmt.Println("  segura login 12345678901 --password segura-dev   # client")
			return nil
		},
	}
}
