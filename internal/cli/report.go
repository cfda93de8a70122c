package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/brain/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the full network intelligence report",
		Long: `Run every analysis over the stored network: staleness, gaps, energy,
communication patterns, trust clusters, blind spots, goal alignment,
and the prioritized action list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Full(cmd.Context(), time.Now())
		},
	}
}

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Quick network status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Summary(cmd.Context(), time.Now())
		},
	}
}

// ActionsCmd returns the actions command
func ActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "Prioritized action items",
		Long:  `The top relationship actions right now, ranked high to low, capped at ten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Actions(cmd.Context(), time.Now())
		},
	}
}

// BriefCmd returns the brief command
func BriefCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brief [connection-id]",
		Short: "Pre-meeting brief for a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Brief(cmd.Context(), args[0])
		},
	}
}
