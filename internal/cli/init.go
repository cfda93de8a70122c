package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/brain/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the brain database",
		Long:  `Initialize the brain database at ~/.brain/brain.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing brain database at %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if demo {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Seeded demo network")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  brain import ~/Downloads/linkedin-export")
			fmt.Println("  brain summary")

			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Seed a small demo network")
	return cmd
}
