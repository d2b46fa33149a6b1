package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/segura/internal/cli"
	"github.com/example/segura/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "segura",
		Short:   "segura - residential insurance record management",
		Version: version.String(),
		Long: `segura manages residential insurance records: clients, their policies,
the insured properties, and incident claims. Staff accounts administer all
records; client accounts see only their own policy chain.`,
	}

	// Infrastructure commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Session commands
	rootCmd.AddCommand(cli.RegisterCmd())
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	// Record commands
	rootCmd.AddCommand(cli.ClientCmd())
	rootCmd.AddCommand(cli.PolicyCmd())
	rootCmd.AddCommand(cli.PropertyCmd())
	rootCmd.AddCommand(cli.IncidentCmd())
	rootCmd.AddCommand(cli.StaffCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
