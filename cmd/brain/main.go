package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/brain/internal/cli"
	"github.com/example/brain/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "brain",
		Short:   "brain - personal relationship intelligence",
		Version: version.String(),
		Long: `brain keeps a merged, enriched picture of your professional network.
It imports LinkedIn exports, preserves your manual enrichment across
re-imports, and derives staleness, gaps, intro paths, and goal
alignment from the stored snapshot.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.ActionsCmd())
	rootCmd.AddCommand(cli.BriefCmd())
	rootCmd.AddCommand(cli.ConnectionCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	// Analysis commands
	rootCmd.AddCommand(cli.StaleCmd())
	rootCmd.AddCommand(cli.GapsCmd())
	rootCmd.AddCommand(cli.MatchCmd())
	rootCmd.AddCommand(cli.IntroCmd())
	rootCmd.AddCommand(cli.ReconnectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
