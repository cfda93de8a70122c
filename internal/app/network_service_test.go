package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
	"github.com/example/brain/internal/ports/secondary"
)

func testRecords() []*secondary.ConnectionRecord {
	return []*secondary.ConnectionRecord{
		{ID: "conn.jane-doe", Name: "Jane Doe", Company: "Acme", RelationshipStrength: "close",
			Domains: []string{"Engineering"}, TrustLevel: "high", Energy: "energizing"},
		{ID: "conn.bob-cole", Name: "Bob Cole", Company: "Widgets Inc", RelationshipStrength: "warm",
			Domains: []string{"sales"}},
		{ID: "conn.ada-gray", Name: "Ada Gray", RelationshipStrength: "cold", Energy: "draining"},
	}
}

func newTestNetworkService() (*NetworkServiceImpl, *fakeConnStore, *fakeInteractionStore, *fakeExporter) {
	connStore := &fakeConnStore{records: testRecords()}
	interactions := &fakeInteractionStore{}
	importLog := &fakeImportLogStore{}
	exporter := &fakeExporter{}
	return NewNetworkService(connStore, interactions, importLog, exporter), connStore, interactions, exporter
}

func TestNetworkService_Get(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()

	conn, err := svc.Get(context.Background(), "conn.jane-doe")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if conn.Name != "Jane Doe" || conn.RelationshipStrength != network.StrengthClose {
		t.Errorf("unexpected connection: %+v", conn)
	}
	if conn.TrustLevel != network.TrustHigh {
		t.Errorf("TrustLevel = %q", conn.TrustLevel)
	}
}

func TestNetworkService_GetNotFound(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()

	_, err := svc.Get(context.Background(), "conn.ghost")
	if !errors.Is(err, primary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNetworkService_Filters(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()
	ctx := context.Background()

	warm, err := svc.ByStrength(ctx, network.StrengthWarm)
	if err != nil {
		t.Fatalf("ByStrength failed: %v", err)
	}
	if len(warm) != 1 || warm[0].ID != "conn.bob-cole" {
		t.Errorf("ByStrength(warm) = %+v", warm)
	}

	// Case-insensitive substring on domain tags.
	eng, err := svc.ByDomain(ctx, "engineer")
	if err != nil {
		t.Fatalf("ByDomain failed: %v", err)
	}
	if len(eng) != 1 || eng[0].ID != "conn.jane-doe" {
		t.Errorf("ByDomain(engineer) = %+v", eng)
	}

	trusted, err := svc.HighTrust(ctx)
	if err != nil {
		t.Fatalf("HighTrust failed: %v", err)
	}
	if len(trusted) != 1 || trusted[0].ID != "conn.jane-doe" {
		t.Errorf("HighTrust = %+v", trusted)
	}

	draining, err := svc.ByEnergy(ctx, network.EnergyDraining)
	if err != nil {
		t.Fatalf("ByEnergy failed: %v", err)
	}
	if len(draining) != 1 || draining[0].ID != "conn.ada-gray" {
		t.Errorf("ByEnergy(draining) = %+v", draining)
	}
}

func TestNetworkService_Search(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()

	byName, err := svc.Search(context.Background(), "jane")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != "conn.jane-doe" {
		t.Errorf("Search(jane) = %+v", byName)
	}

	byCompany, err := svc.Search(context.Background(), "widgets")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byCompany) != 1 || byCompany[0].ID != "conn.bob-cole" {
		t.Errorf("Search(widgets) = %+v", byCompany)
	}
}

func TestNetworkService_SetEnrichment(t *testing.T) {
	svc, connStore, _, _ := newTestNetworkService()

	trust := "low"
	notes := "follow up about the conference"
	conn, err := svc.SetEnrichment(context.Background(), primary.SetEnrichmentRequest{
		ConnectionID: "conn.jane-doe",
		TrustLevel:   &trust,
		Notes:        &notes,
		Positives:    []string{"sharp", "generous"},
	})
	if err != nil {
		t.Fatalf("SetEnrichment failed: %v", err)
	}

	if conn.TrustLevel != network.TrustLow || conn.Notes != notes {
		t.Errorf("updated connection = %+v", conn)
	}
	if !reflect.DeepEqual(conn.Positives, []string{"sharp", "generous"}) {
		t.Errorf("Positives = %v", conn.Positives)
	}
	// Fields absent from the request stay untouched.
	if conn.Energy != network.EnergyEnergizing {
		t.Errorf("Energy changed unexpectedly: %q", conn.Energy)
	}
	if !reflect.DeepEqual(conn.Domains, []string{"Engineering"}) {
		t.Errorf("Domains changed unexpectedly: %v", conn.Domains)
	}

	if connStore.lastUpsert == nil || connStore.lastUpsert.TrustLevel != "low" {
		t.Error("updated record was not persisted")
	}
}

func TestNetworkService_SetEnrichmentClearsWithEmptyValue(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()

	empty := ""
	conn, err := svc.SetEnrichment(context.Background(), primary.SetEnrichmentRequest{
		ConnectionID: "conn.jane-doe",
		TrustLevel:   &empty,
	})
	if err != nil {
		t.Fatalf("SetEnrichment failed: %v", err)
	}
	if conn.TrustLevel != "" {
		t.Errorf("TrustLevel = %q, want cleared", conn.TrustLevel)
	}
}

func TestNetworkService_SetEnrichmentNotFound(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()

	_, err := svc.SetEnrichment(context.Background(), primary.SetEnrichmentRequest{ConnectionID: "conn.ghost"})
	if !errors.Is(err, primary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNetworkService_LogInteraction(t *testing.T) {
	svc, _, interactions, _ := newTestNetworkService()

	err := svc.LogInteraction(context.Background(), primary.LogInteractionRequest{
		With: "Jane Doe", Date: "2025-06-15",
	})
	if err != nil {
		t.Fatalf("LogInteraction failed: %v", err)
	}
	if len(interactions.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(interactions.records))
	}
	if interactions.records[0].Medium != "unknown" {
		t.Errorf("empty medium should default to unknown, got %q", interactions.records[0].Medium)
	}
}

func TestNetworkService_LogInteractionRequiresName(t *testing.T) {
	svc, _, _, _ := newTestNetworkService()

	if err := svc.LogInteraction(context.Background(), primary.LogInteractionRequest{Medium: "call"}); err == nil {
		t.Error("expected an error for a missing counterpart name")
	}
}

func TestNetworkService_Export(t *testing.T) {
	svc, _, _, exporter := newTestNetworkService()

	if err := svc.Export(context.Background(), "out/network.yaml"); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if exporter.lastPath != "out/network.yaml" {
		t.Errorf("path = %q", exporter.lastPath)
	}
	if len(exporter.lastConnections) != 3 {
		t.Errorf("exported %d connections, want 3", len(exporter.lastConnections))
	}
}
