package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/sitedesk/internal/core/suggestion"
	"github.com/example/sitedesk/internal/ports/secondary"
)

// CannedBackend implements secondary.QueryBackend with deterministic
// fixtures, for offline use and demos. The keyword routing mirrors the live
// backend's classifier: preventive wording yields schedule checks, breakdown
// wording yields a repair classification, spare-part wording yields inventory
// checks, and everything else is general.
type CannedBackend struct{}

// NewCannedBackend creates a new CannedBackend.
func NewCannedBackend() *CannedBackend {
	return &CannedBackend{}
}

var repairKeywords = []string{"broken", "leak", "repair", "fault", "failure", "down"}

var inventoryKeywords = []string{"spare", "part", "inventory"}

var preventiveKeywords = []string{"preventive", "maintenance", "due", "schedule", "service"}

// Query returns a canned result routed on keywords in the message.
func (b *CannedBackend) Query(ctx context.Context, req secondary.QueryRequest) (*secondary.QueryResult, error) {
	message := strings.ToLower(req.Message)

	for _, kw := range repairKeywords {
		if strings.Contains(message, kw) {
			return b.repairResult(req), nil
		}
	}
	for _, kw := range inventoryKeywords {
		if strings.Contains(message, kw) {
			return b.inventoryResult(), nil
		}
	}
	for _, kw := range preventiveKeywords {
		if strings.Contains(message, kw) {
			return b.preventiveResult(req), nil
		}
	}

	return &secondary.QueryResult{
		Answer: "I can help with maintenance schedules, staffing, and spare parts. Try asking what is due for a piece of equipment.",
		SuggestedWorkOrder: &suggestion.SuggestedWorkOrder{
			JobType: "GENERAL",
		},
	}, nil
}

// Health always succeeds; the canned backend has no remote dependency.
func (b *CannedBackend) Health(ctx context.Context) error {
	return nil
}

func (b *CannedBackend) preventiveResult(req secondary.QueryRequest) *secondary.QueryResult {
	equipment := req.EquipmentUID
	if equipment == "" {
		equipment = "EQ-100"
	}

	nextDate := "2026-02-15"
	if req.DateRange != nil && req.DateRange.Start != "" {
		nextDate = req.DateRange.Start
	}

	score := 0.92
	level := 5

	return &secondary.QueryResult{
		Answer: fmt.Sprintf("Next preventive maintenance for %s is on %s. It requires an ELEC-2 certified technician and is estimated at 120 minutes.", equipment, nextDate),
		Evidence: []suggestion.Evidence{
			{
				Source:  "maintenance_plan.pdf",
				Section: "Service intervals",
				Score:   &score,
				Snippet: "Inspect and service every 90 days.",
			},
		},
		Checks: &suggestion.Checks{
			Schedule: &suggestion.ScheduleCheck{
				EquipmentUID:   equipment,
				NextDate:       nextDate,
				RequiredCerts:  []string{"ELEC-2"},
				EstDurationMin: 120,
			},
			Employees: []suggestion.EmployeeCheck{
				{EmployeeID: "EMP-01", Name: "Dana Ortiz", Conflicts: nil},
				{EmployeeID: "EMP-02", Name: "Sam Becker", Conflicts: nil},
			},
			Inventory: []suggestion.InventoryCheck{
				{PartID: "PART-33", PartName: "Air filter", Qty: 2, ReorderLevel: &level},
			},
		},
		SuggestedWorkOrder: &suggestion.SuggestedWorkOrder{
			JobType: "PREVENTIVE",
		},
	}
}

func (b *CannedBackend) inventoryResult() *secondary.QueryResult {
	filterLevel := 5
	beltLevel := 4

	return &secondary.QueryResult{
		Answer: "Two spare parts are tracked. PART-33 Air filter is at or below its reorder level.",
		Checks: &suggestion.Checks{
			Inventory: []suggestion.InventoryCheck{
				{PartID: "PART-33", PartName: "Air filter", Qty: 2, ReorderLevel: &filterLevel},
				{PartID: "PART-40", PartName: "Drive belt", Qty: 9, ReorderLevel: &beltLevel},
			},
		},
	}
}

func (b *CannedBackend) repairResult(req secondary.QueryRequest) *secondary.QueryResult {
	equipment := req.EquipmentUID
	if equipment == "" {
		equipment = "the equipment"
	}

	return &secondary.QueryResult{
		Answer: fmt.Sprintf("That sounds like a breakdown on %s. Raise a repair work order and check the fault log before dispatching.", equipment),
		SuggestedWorkOrder: &suggestion.SuggestedWorkOrder{
			JobType: "REPAIR",
		},
	}
}

// Ensure CannedBackend implements the interface
var _ secondary.QueryBackend = (*CannedBackend)(nil)
