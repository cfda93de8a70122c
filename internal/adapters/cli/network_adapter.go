package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
)

// NetworkAdapter is a thin adapter that translates CLI operations to
// NetworkService calls.
type NetworkAdapter struct {
	service primary.NetworkService
	out     io.Writer
}

// NewNetworkAdapter creates a new NetworkAdapter with the given service.
func NewNetworkAdapter(service primary.NetworkService, out io.Writer) *NetworkAdapter {
	return &NetworkAdapter{
		service: service,
		out:     out,
	}
}

// List lists connections, optionally filtered by strength, domain, or
// energy. Filters are applied one at a time; the first non-empty wins.
func (a *NetworkAdapter) List(ctx context.Context, strength, domain, energy string, highTrust bool) error {
	var (
		conns []network.Connection
		err   error
	)
	switch {
	case strength != "":
		conns, err = a.service.ByStrength(ctx, network.Strength(strength))
	case domain != "":
		conns, err = a.service.ByDomain(ctx, domain)
	case energy != "":
		conns, err = a.service.ByEnergy(ctx, network.Energy(energy))
	case highTrust:
		conns, err = a.service.HighTrust(ctx)
	default:
		conns, err = a.service.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list connections: %w", err)
	}

	a.printConnections(conns)
	return nil
}

// Show displays details for a single connection.
func (a *NetworkAdapter) Show(ctx context.Context, id string) error {
	conn, err := a.service.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s  %s\n", conn.ID, color.New(color.Bold).Sprint(conn.Name))
	if conn.Company != "" || conn.Position != "" {
		fmt.Fprintf(a.out, "%s", conn.Position)
		if conn.Company != "" {
			if conn.Position != "" {
				fmt.Fprint(a.out, " at ")
			}
			fmt.Fprint(a.out, conn.Company)
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintf(a.out, "Strength: %s  Messages: %d\n", conn.RelationshipStrength, conn.MessageCount)
	if conn.TrustLevel != "" {
		fmt.Fprintf(a.out, "Trust:    %s\n", conn.TrustLevel)
	}
	if conn.Energy != "" {
		fmt.Fprintf(a.out, "Energy:   %s\n", conn.Energy)
	}
	if last := conn.LastTouch(); last != "" {
		fmt.Fprintf(a.out, "Last:     %s\n", last)
	}
	if len(conn.Domains) > 0 {
		fmt.Fprintf(a.out, "Domains:  %s\n", strings.Join(conn.Domains, ", "))
	}
	if len(conn.CanAskFor) > 0 {
		fmt.Fprintf(a.out, "Can ask:  %s\n", strings.Join(conn.CanAskFor, ", "))
	}
	if len(conn.Positives) > 0 {
		fmt.Fprintf(a.out, "Positives: %s\n", strings.Join(conn.Positives, "; "))
	}
	if len(conn.Negatives) > 0 {
		fmt.Fprintf(a.out, "Negatives: %s\n", strings.Join(conn.Negatives, "; "))
	}
	if conn.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", conn.Notes)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Search finds connections by name or company.
func (a *NetworkAdapter) Search(ctx context.Context, query string) error {
	conns, err := a.service.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to search connections: %w", err)
	}
	if len(conns) == 0 {
		fmt.Fprintf(a.out, "No connections matching %q\n", query)
		return nil
	}
	a.printConnections(conns)
	return nil
}

// Set applies manual enrichment edits to a connection.
func (a *NetworkAdapter) Set(ctx context.Context, req primary.SetEnrichmentRequest) error {
	conn, err := a.service.SetEnrichment(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Updated %s (%s)\n", conn.ID, conn.Name)
	return nil
}

// Log records a communication event.
func (a *NetworkAdapter) Log(ctx context.Context, with, medium, date string) error {
	err := a.service.LogInteraction(ctx, primary.LogInteractionRequest{
		With:   with,
		Medium: medium,
		Date:   date,
	})
	if err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Logged %s with %s\n", medium, with)
	return nil
}

// Export writes the network snapshot to a YAML document.
func (a *NetworkAdapter) Export(ctx context.Context, path string) error {
	if err := a.service.Export(ctx, path); err != nil {
		return fmt.Errorf("failed to export network: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Exported network to %s\n", path)
	return nil
}

func (a *NetworkAdapter) printConnections(conns []network.Connection) {
	if len(conns) == 0 {
		fmt.Fprintln(a.out, "No connections found")
		return
	}

	fmt.Fprintf(a.out, "\n%-28s %-24s %-8s %-6s %s\n", "ID", "NAME", "STRENGTH", "MSGS", "COMPANY")
	fmt.Fprintln(a.out, strings.Repeat("─", 84))
	for _, c := range conns {
		fmt.Fprintf(a.out, "%-28s %-24s %-8s %-6d %s\n",
			c.ID, c.Name, c.RelationshipStrength, c.MessageCount, c.Company)
	}
	fmt.Fprintln(a.out)
}
