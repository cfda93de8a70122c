package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
)

// mockNetworkService implements primary.NetworkService for testing
type mockNetworkService struct {
	listFn       func(ctx context.Context) ([]network.Connection, error)
	getFn        func(ctx context.Context, id string) (network.Connection, error)
	byStrengthFn func(ctx context.Context, strength network.Strength) ([]network.Connection, error)
	searchFn     func(ctx context.Context, query string) ([]network.Connection, error)
	setFn        func(ctx context.Context, req primary.SetEnrichmentRequest) (network.Connection, error)

	lastSetReq primary.SetEnrichmentRequest
	lastLogReq primary.LogInteractionRequest
}

func (m *mockNetworkService) Snapshot(ctx context.Context) (*network.Snapshot, error) {
	return &network.Snapshot{}, nil
}

func (m *mockNetworkService) List(ctx context.Context) ([]network.Connection, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockNetworkService) Get(ctx context.Context, id string) (network.Connection, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return network.Connection{ID: id, Name: "Test Person"}, nil
}

func (m *mockNetworkService) ByDomain(ctx context.Context, domain string) ([]network.Connection, error) {
	return nil, nil
}

func (m *mockNetworkService) ByStrength(ctx context.Context, strength network.Strength) ([]network.Connection, error) {
	if m.byStrengthFn != nil {
		return m.byStrengthFn(ctx, strength)
	}
	return nil, nil
}

func (m *mockNetworkService) HighTrust(ctx context.Context) ([]network.Connection, error) {
	return nil, nil
}

func (m *mockNetworkService) ByEnergy(ctx context.Context, energy network.Energy) ([]network.Connection, error) {
	return nil, nil
}

func (m *mockNetworkService) Search(ctx context.Context, query string) ([]network.Connection, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

func (m *mockNetworkService) SetEnrichment(ctx context.Context, req primary.SetEnrichmentRequest) (network.Connection, error) {
	m.lastSetReq = req
	if m.setFn != nil {
		return m.setFn(ctx, req)
	}
	return network.Connection{ID: req.ConnectionID, Name: "Test Person"}, nil
}

func (m *mockNetworkService) LogInteraction(ctx context.Context, req primary.LogInteractionRequest) error {
	m.lastLogReq = req
	return nil
}

func (m *mockNetworkService) Interactions(ctx context.Context) ([]network.Interaction, error) {
	return nil, nil
}

func (m *mockNetworkService) Export(ctx context.Context, path string) error {
	return nil
}

func TestNetworkAdapter_List(t *testing.T) {
	mock := &mockNetworkService{
		listFn: func(ctx context.Context) ([]network.Connection, error) {
			return []network.Connection{
				{ID: "conn.jane-doe", Name: "Jane Doe", RelationshipStrength: network.StrengthClose, MessageCount: 12, Company: "Acme"},
				{ID: "conn.bob-cole", Name: "Bob Cole", RelationshipStrength: network.StrengthCold},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewNetworkAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "", "", "", false); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "conn.jane-doe") || !strings.Contains(output, "Acme") {
		t.Errorf("expected connection rows in output, got: %s", output)
	}
}

func TestNetworkAdapter_List_StrengthFilter(t *testing.T) {
	var filtered network.Strength
	mock := &mockNetworkService{
		byStrengthFn: func(ctx context.Context, strength network.Strength) ([]network.Connection, error) {
			filtered = strength
			return nil, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewNetworkAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "close", "", "", false); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if filtered != network.StrengthClose {
		t.Errorf("expected strength filter 'close', got '%s'", filtered)
	}
	if !strings.Contains(buf.String(), "No connections found") {
		t.Errorf("expected empty-list message, got: %s", buf.String())
	}
}

func TestNetworkAdapter_Show_NotFound(t *testing.T) {
	mock := &mockNetworkService{
		getFn: func(ctx context.Context, id string) (network.Connection, error) {
			return network.Connection{}, primary.ErrNotFound
		},
	}
	var buf bytes.Buffer
	adapter := NewNetworkAdapter(mock, &buf)

	err := adapter.Show(context.Background(), "conn.nobody")
	if !errors.Is(err, primary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNetworkAdapter_Set(t *testing.T) {
	mock := &mockNetworkService{}
	var buf bytes.Buffer
	adapter := NewNetworkAdapter(mock, &buf)

	trust := "high"
	req := primary.SetEnrichmentRequest{
		ConnectionID: "conn.jane-doe",
		TrustLevel:   &trust,
		Domains:      []string{"engineering"},
	}
	if err := adapter.Set(context.Background(), req); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if mock.lastSetReq.ConnectionID != "conn.jane-doe" {
		t.Errorf("expected request to reach service, got %+v", mock.lastSetReq)
	}
	if mock.lastSetReq.TrustLevel == nil || *mock.lastSetReq.TrustLevel != "high" {
		t.Error("expected trust level to pass through")
	}
	if !strings.Contains(buf.String(), "Updated conn.jane-doe") {
		t.Errorf("expected confirmation, got: %s", buf.String())
	}
}

func TestNetworkAdapter_Log(t *testing.T) {
	mock := &mockNetworkService{}
	var buf bytes.Buffer
	adapter := NewNetworkAdapter(mock, &buf)

	if err := adapter.Log(context.Background(), "Jane Doe", "coffee", "2025-06-01"); err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if mock.lastLogReq.With != "Jane Doe" || mock.lastLogReq.Medium != "coffee" {
		t.Errorf("unexpected log request: %+v", mock.lastLogReq)
	}
}

func TestNetworkAdapter_Search_Empty(t *testing.T) {
	mock := &mockNetworkService{}
	var buf bytes.Buffer
	adapter := NewNetworkAdapter(mock, &buf)

	if err := adapter.Search(context.Background(), "nobody"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !strings.Contains(buf.String(), `No connections matching "nobody"`) {
		t.Errorf("expected no-match message, got: %s", buf.String())
	}
}
