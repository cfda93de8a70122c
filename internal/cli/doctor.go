package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/brain/internal/config"
	"github.com/example/brain/internal/db"
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
		Short: "Validate the brain environment",
		Long: `Health check for the brain setup.

Validates:
- Data directory (~/.brain/)
- Database file and schema
- Config file parseability
- Goals file presence

Examples:
  brain doctor           # Run full health check
  brain doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkConfig(),
				checkGoals(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
				}
				if !quiet {
					fmt.Printf("%s %s\n", r.Status, r.Name)
					if r.Status != "✓" && r.Details != "" {
						fmt.Printf("    %s\n", r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Exit code only, no output")
	return cmd
}

func checkDataDir() CheckResult {
	dir, err := config.DataDir()
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: err.Error()}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{Name: "Data directory", Status: "⚠", Details: dir + " does not exist yet (run: brain init)"}
	}
	return CheckResult{Name: "Data directory", Status: "✓"}
}

func checkDatabase() CheckResult {
	path, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: err.Error()}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "⚠", Details: path + " does not exist yet (run: brain init)"}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: err.Error()}
	}
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM connections").Scan(&count); err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "schema check failed: " + err.Error()}
	}
	return CheckResult{Name: fmt.Sprintf("Database (%d connections)", count), Status: "✓"}
}

func checkConfig() CheckResult {
	dir, err := config.DataDir()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: err.Error()}
	}
	if _, err := config.LoadConfig(dir); err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: "Config", Status: "✓"}
}

func checkGoals() CheckResult {
	dir, err := config.DataDir()
	if err != nil {
		return CheckResult{Name: "Goals file", Status: "✗", Details: err.Error()}
	}
	path := filepath.Join(dir, "goals.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Goals file", Status: "⚠", Details: path + " not found; goal alignment will report no data"}
	}
	return CheckResult{Name: "Goals file", Status: "✓"}
}
