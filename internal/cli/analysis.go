package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/wire"
)

// StaleCmd returns the stale command
func StaleCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stale",
		Short: "Warm and close relationships going cold",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Stale(cmd.Context(), time.Now(), days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Staleness threshold in days (default 180)")
	return cmd
}

// GapsCmd returns the gaps command
func GapsCmd() *cobra.Command {
	var domains []string

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Target domains with thin or missing coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Gaps(cmd.Context(), domains)
		},
	}

	cmd.Flags().StringSliceVar(&domains, "domains", nil, "Target domains to check (default configured set)")
	return cmd
}

// MatchCmd returns the match command
func MatchCmd() *cobra.Command {
	var minStrength string

	cmd := &cobra.Command{
		Use:   "match [topic]",
		Short: "Who in the network can help with a topic",
		Long: `Search domains, positions, companies, notes, and can-ask-for tags for
a topic and report who to talk to.

Examples:
  brain match fundraising
  brain match "machine learning" --min-strength warm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Match(cmd.Context(), args[0], network.Strength(minStrength))
		},
	}

	cmd.Flags().StringVar(&minStrength, "min-strength", "", "Minimum relationship strength (cold, warm, close)")
	return cmd
}

// IntroCmd returns the intro command
func IntroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intro [domain]",
		Short: "Likely introduction paths into a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Intros(cmd.Context(), args[0])
		},
	}
}

// ReconnectCmd returns the reconnect command
func ReconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconnect [topic]...",
		Short: "People worth re-engaging for active topics",
		Long: `Cross-reference topics you are working on against the network and
suggest warm-or-better connections who might help.

Examples:
  brain reconnect fundraising machine-learning`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Reconnect(cmd.Context(), args)
		},
	}
}
