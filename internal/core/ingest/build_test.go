package ingest

import (
	"testing"

	"github.com/example/brain/internal/core/network"
)

func TestBuildConnections(t *testing.T) {
	raw := &RawExport{
		Contacts: []ContactRow{
			{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Company: "Acme", Position: "CTO", ConnectedDate: "15 Jan 2023"},
			{FirstName: "Bob", LastName: "Cole", ConnectedDate: "2024-02-01"},
			{FirstName: "", LastName: "Ghost"},
		},
		Messages: []MessageRow{
			{Sender: "Jane Doe", Date: "01 Mar 2024"},
			{Sender: "Jane Doe", Date: "15 Jun 2024"},
			{Sender: "Jane Doe", Date: "02 Feb 2024"},
			{Sender: "Jane Doe", Date: "10 Jan 2024"},
		},
	}

	conns := BuildConnections(raw)

	if len(conns) != 2 {
		t.Fatalf("expected 2 connections (empty first name skipped), got %d", len(conns))
	}

	jane := conns[0]
	if jane.ID != "conn.jane-doe" || jane.Name != "Jane Doe" {
		t.Errorf("unexpected identity: %+v", jane)
	}
	if jane.ConnectedDate != "2023-01-15" {
		t.Errorf("ConnectedDate = %q, want normalized", jane.ConnectedDate)
	}
	if jane.MessageCount != 4 {
		t.Errorf("MessageCount = %d, want 4", jane.MessageCount)
	}
	if jane.LastMessage != "2024-06-15" {
		t.Errorf("LastMessage = %q, want max date", jane.LastMessage)
	}
	if jane.RelationshipStrength != network.StrengthWarm {
		t.Errorf("strength = %q, want warm for 4 messages", jane.RelationshipStrength)
	}

	bob := conns[1]
	if bob.MessageCount != 0 || bob.RelationshipStrength != network.StrengthCold {
		t.Errorf("no-message contact should stay cold: %+v", bob)
	}
	if bob.LastMessage != "" {
		t.Errorf("LastMessage = %q, want empty", bob.LastMessage)
	}
}

func TestBuildConnections_FirstNameFallback(t *testing.T) {
	raw := &RawExport{
		Contacts: []ContactRow{
			{FirstName: "Jane", LastName: "Doe"},
		},
		Messages: []MessageRow{
			{Sender: "Jane", Date: "2024-01-10"},
			{Sender: "Jane", Date: "2024-01-11"},
			{Sender: "Jane", Date: "2024-01-12"},
		},
	}

	conns := BuildConnections(raw)
	if len(conns) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(conns))
	}
	if conns[0].MessageCount != 3 {
		t.Errorf("expected first-name message match, got count %d", conns[0].MessageCount)
	}
	if conns[0].RelationshipStrength != network.StrengthWarm {
		t.Errorf("strength = %q, want warm", conns[0].RelationshipStrength)
	}
}

func TestBuildConnections_DuplicateNamesGetSuffixes(t *testing.T) {
	raw := &RawExport{
		Contacts: []ContactRow{
			{FirstName: "Jane", LastName: "Doe", Company: "First Co"},
			{FirstName: "Jane", LastName: "Doe", Company: "Second Co"},
		},
	}

	conns := BuildConnections(raw)
	if len(conns) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(conns))
	}
	if conns[0].ID != "conn.jane-doe" || conns[1].ID != "conn.jane-doe-2" {
		t.Errorf("ids = %q, %q", conns[0].ID, conns[1].ID)
	}
	// Suffix assignment follows row order
	if conns[0].Company != "First Co" {
		t.Errorf("bare id went to %q, want the first row", conns[0].Company)
	}
}
