package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
	"github.com/example/brain/internal/wire"
)

// ConnectionCmd returns the connection command group
func ConnectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connection",
		Aliases: []string{"conn"},
		Short:   "Browse and enrich connections",
	}

	cmd.AddCommand(connectionListCmd())
	cmd.AddCommand(connectionShowCmd())
	cmd.AddCommand(connectionSearchCmd())
	cmd.AddCommand(connectionSetCmd())
	return cmd
}

func connectionListCmd() *cobra.Command {
	var (
		strength  string
		domain    string
		energy    string
		highTrust bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections",
		Long: `List connections, optionally filtered.

Examples:
  brain connection list
  brain connection list --strength close
  brain connection list --domain fundraising
  brain connection list --high-trust`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NetworkAdapter().List(cmd.Context(), strength, domain, energy, highTrust)
		},
	}

	cmd.Flags().StringVar(&strength, "strength", "", "Filter by relationship strength (cold, warm, close)")
	cmd.Flags().StringVar(&domain, "domain", "", "Filter by domain tag")
	cmd.Flags().StringVar(&energy, "energy", "", "Filter by energy (energizing, neutral, draining)")
	cmd.Flags().BoolVar(&highTrust, "high-trust", false, "Only high-trust connections")
	return cmd
}

func connectionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [connection-id]",
		Short: "Show one connection in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NetworkAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func connectionSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search connections by name or company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NetworkAdapter().Search(cmd.Context(), args[0])
		},
	}
}

func connectionSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [connection-id]",
		Short: "Set manual enrichment fields",
		Long: `Set the hand-curated fields on a connection. Only flags you pass
change; everything else is untouched, and an import never overwrites
these fields.

Examples:
  brain connection set conn.jane-doe --trust high --energy energizing
  brain connection set conn.jane-doe --domain engineering --domain ai
  brain connection set conn.jane-doe --positive "sharp" --negative "slow to reply"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.SetEnrichmentRequest{ConnectionID: args[0]}

			setString := func(name string, dest **string) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					*dest = &v
				}
			}
			setString("trust", &req.TrustLevel)
			setString("energy", &req.Energy)
			setString("notes", &req.Notes)
			setString("context", &req.Context)
			setString("last-contact", &req.LastContact)
			setString("frequency", &req.ContactFrequency)

			setSlice := func(name string, dest *[]string) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetStringSlice(name)
					*dest = v
				}
			}
			setSlice("domain", &req.Domains)
			setSlice("can-ask-for", &req.CanAskFor)
			setSlice("introduces-to", &req.IntroducesTo)
			setSlice("positive", &req.Positives)
			setSlice("negative", &req.Negatives)

			return wire.NetworkAdapter().Set(cmd.Context(), req)
		},
	}

	cmd.Flags().String("trust", "", "Trust level (high, medium, low)")
	cmd.Flags().String("energy", "", "Energy (energizing, neutral, draining)")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("context", "", "How you know them")
	cmd.Flags().String("last-contact", "", "Last manual contact date (YYYY-MM-DD)")
	cmd.Flags().String("frequency", "", "Intended contact frequency")
	cmd.Flags().StringSlice("domain", nil, "Domain tags (replaces the set)")
	cmd.Flags().StringSlice("can-ask-for", nil, "What you can ask them for (replaces the set)")
	cmd.Flags().StringSlice("introduces-to", nil, "Who they can introduce you to (replaces the set)")
	cmd.Flags().StringSlice("positive", nil, "Observed positives (replaces the set)")
	cmd.Flags().StringSlice("negative", nil, "Observed negatives (replaces the set)")
	return cmd
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	var (
		medium string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "log [name]",
		Short: "Log an interaction",
		Long: `Record a communication event with someone in (or outside) the network.

Examples:
  brain log "Jane Doe" --medium coffee --date 2025-06-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(network.DateLayout)
			}
			return wire.NetworkAdapter().Log(cmd.Context(), args[0], medium, date)
		},
	}

	cmd.Flags().StringVar(&medium, "medium", "", "How you talked (coffee, call, email, ...)")
	cmd.Flags().StringVar(&date, "date", "", "When (YYYY-MM-DD, default today)")
	return cmd
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the network to a YAML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NetworkAdapter().Export(cmd.Context(), out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "network.yaml", "Output path")
	return cmd
}
