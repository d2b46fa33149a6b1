package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/segura/internal/config"
	"github.com/example/segura/internal/db"
	"github.com/example/segura/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the segura environment",
		Long: `Environment health check for segura.

Validates:
- Directory structure (~/.segura/)
- Database file and schema version
- Stored login session

Examples:
  segura doctor              # Run full health check
  segura doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDirectories(),
				checkDatabase(),
				checkSession(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Printf("segura doctor (%s)\n", version.String())
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, colorStatus(r.Status))
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'segura init' to set up the environment.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func colorStatus(status string) string {
	switch status {
	case "✓":
		return color.New(color.FgGreen).Sprint(status)
	case "⚠":
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}

// checkDirectories validates required directory structure
func checkDirectories() CheckResult {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{Name: "Directories", Status: "✗", Details: "  Cannot get home directory"}
	}

	missing := []string{}

	seguraDir := filepath.Join(homeDir, ".segura")
	if _, err := os.Stat(seguraDir); os.IsNotExist(err) {
		missing = append(missing, "~/.segura/")
	}

	dbPath := filepath.Join(homeDir, ".segura", "segura.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		missing = append(missing, "~/.segura/segura.db")
	}

	if len(missing) > 0 {
		return CheckResult{
			Name:    "Directories",
			Status:  "✗",
			Details: "  Missing: " + strings.Join(missing, ", ") + "\n  Run: segura init",
		}
	}

	return CheckResult{Name: "Directories", Status: "✓"}
}

// checkDatabase opens the database and verifies the schema version
func checkDatabase() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}

	var current int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  Cannot read schema version; run: segura init"}
	}

	latest := db.LatestMigrationVersion()
	if current < latest {
		return CheckResult{
			Name:    "Database",
			Status:  "⚠",
			Details: fmt.Sprintf("  Schema at version %d, latest is %d\n  Run: segura init", current, latest),
		}
	}

	return CheckResult{Name: "Database", Status: "✓"}
}

// checkSession reports the stored login session state
func checkSession() CheckResult {
	session, err := config.LoadSession()
	if err != nil {
		if errors.Is(err, config.ErrNoSession) {
			return CheckResult{Name: "Session", Status: "⚠", Details: "  Not logged in\n  Run: segura login <national-id> --password <pw>"}
		}
		return CheckResult{Name: "Session", Status: "✗", Details: "  " + err.Error()}
	}

	return CheckResult{Name: "Session", Status: "✓", Details: fmt.Sprintf("  %s (%s)", session.Name, session.Role)}
}
