package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/sitedesk/internal/adapters/backend"
	"github.com/example/sitedesk/internal/app"
	"github.com/example/sitedesk/internal/core/suggestion"
	"github.com/example/sitedesk/internal/ports/primary"
)

// mockChatService implements primary.ChatService for testing
type mockChatService struct {
	queryFn func(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error)

	lastReq primary.ChatRequest
}

func (m *mockChatService) Query(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error) {
	m.lastReq = req
	if m.queryFn != nil {
		return m.queryFn(ctx, req)
	}
	return &primary.ChatResponse{Answer: "Nothing due."}, nil
}

func intPtr(n int) *int { return &n }

func fullResponse() *primary.ChatResponse {
	return &primary.ChatResponse{
		Answer: "EQ-100 is due on 2026-02-15.",
		Evidence: []suggestion.Evidence{
			{Source: "manual.pdf", Section: "Intervals", Snippet: "every 90 days"},
		},
		Checks: &suggestion.Checks{
			Schedule: &suggestion.ScheduleCheck{
				EquipmentUID:   "EQ-100",
				NextDate:       "2026-02-15",
				RequiredCerts:  []string{"ELEC-2"},
				EstDurationMin: 120,
			},
			Employees: []suggestion.EmployeeCheck{
				{EmployeeID: "EMP-01", Name: "Dana", Conflicts: nil},
				{EmployeeID: "EMP-02", Name: "Sam", Conflicts: []suggestion.Conflict{{WorkOrderID: "WO-009"}}},
			},
			Inventory: []suggestion.InventoryCheck{
				{PartID: "PART-33", PartName: "Air filter", Qty: 2, ReorderLevel: intPtr(5)},
				{PartID: "PART-40", PartName: "Belt", Qty: 10, ReorderLevel: intPtr(5)},
			},
		},
		SuggestedWorkOrder: &suggestion.SuggestedWorkOrder{
			SiteID:        "SITE-A",
			EquipmentUID:  "EQ-100",
			JobType:       "PREVENTIVE",
			PlannedStart:  "2026-02-15T08:00:00Z",
			PlannedEnd:    "2026-02-15T10:00:00Z",
			RequiredCerts: []string{"ELEC-2"},
			EmployeeID:    "EMP-01",
		},
	}
}

func TestChatAdapter_QueryRendersAll(t *testing.T) {
	service := &mockChatService{
		queryFn: func(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error) {
			return fullResponse(), nil
		},
	}
	var buf bytes.Buffer
	adapter := NewChatAdapter(service, &buf)

	err := adapter.Query(context.Background(), primary.ChatRequest{
		Message:      "what is due for EQ-100?",
		SiteID:       "SITE-A",
		EquipmentUID: "EQ-100",
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"EQ-100 is due on 2026-02-15.",
		"manual.pdf",
		"Schedule: EQ-100 next due 2026-02-15",
		"✓ Dana (EMP-01) available",
		"✗ Sam (EMP-02) 1 conflict(s)",
		"PART-33 Air filter: 2 on hand LOW",
		"Suggested work order:",
		"Assigned:  EMP-01",
		"--site SITE-A",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	// Belt is above its reorder level and must not be flagged
	if strings.Contains(out, "Belt: 10 on hand LOW") {
		t.Errorf("did not expect LOW marker for Belt, got:\n%s", out)
	}
}

func TestChatAdapter_QueryAnswerOnly(t *testing.T) {
	service := &mockChatService{}
	var buf bytes.Buffer
	adapter := NewChatAdapter(service, &buf)

	if err := adapter.Query(context.Background(), primary.ChatRequest{Message: "hi"}); err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Nothing due.") {
		t.Errorf("unexpected output: %s", out)
	}
	if strings.Contains(out, "Suggested work order") {
		t.Errorf("expected no suggestion block, got:\n%s", out)
	}
}

func TestChatAdapter_QueryError(t *testing.T) {
	service := &mockChatService{
		queryFn: func(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error) {
			return nil, errors.New("upstream query backend unavailable")
		},
	}
	var buf bytes.Buffer
	adapter := NewChatAdapter(service, &buf)

	if err := adapter.Query(context.Background(), primary.ChatRequest{Message: "hi"}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestChatAdapter_LowStock(t *testing.T) {
	service := &mockChatService{
		queryFn: func(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error) {
			return fullResponse(), nil
		},
	}
	var buf bytes.Buffer
	adapter := NewChatAdapter(service, &buf)

	if err := adapter.LowStock(context.Background(), "SITE-A"); err != nil {
		t.Fatalf("LowStock failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "PART-33") {
		t.Errorf("expected low item listed, got:\n%s", out)
	}
	if strings.Contains(out, "PART-40") {
		t.Errorf("expected healthy item excluded, got:\n%s", out)
	}
	if service.lastReq.SiteID != "SITE-A" {
		t.Errorf("expected site forwarded, got %+v", service.lastReq)
	}
}

// The offline backend must route the adapter's own inventory query to
// inventory checks, not the general fallback.
func TestChatAdapter_LowStockOfflineBackend(t *testing.T) {
	service := app.NewChatService(backend.NewCannedBackend())
	var buf bytes.Buffer
	adapter := NewChatAdapter(service, &buf)

	if err := adapter.LowStock(context.Background(), "SITE-A"); err != nil {
		t.Fatalf("LowStock failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "No inventory data available") {
		t.Fatalf("expected inventory data from offline backend, got:\n%s", out)
	}
	if !strings.Contains(out, "PART-33") {
		t.Errorf("expected low item listed, got:\n%s", out)
	}
	if strings.Contains(out, "PART-40") {
		t.Errorf("expected healthy item excluded, got:\n%s", out)
	}
}

func TestChatAdapter_LowStockAllHealthy(t *testing.T) {
	service := &mockChatService{
		queryFn: func(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error) {
			return &primary.ChatResponse{
				Answer: "inventory",
				Checks: &suggestion.Checks{
					Inventory: []suggestion.InventoryCheck{
						{PartID: "PART-40", PartName: "Belt", Qty: 10, ReorderLevel: intPtr(5)},
					},
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewChatAdapter(service, &buf)

	if err := adapter.LowStock(context.Background(), ""); err != nil {
		t.Fatalf("LowStock failed: %v", err)
	}
	if !strings.Contains(buf.String(), "above their reorder levels") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
