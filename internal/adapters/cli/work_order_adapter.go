// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/sitedesk/internal/ports/primary"
)

// WorkOrderAdapter is a thin adapter that translates CLI operations to
// WorkOrderService calls. It depends only on the service interface, enabling
// easy testing with mocks.
type WorkOrderAdapter struct {
	service primary.WorkOrderService
	out     io.Writer
}

// NewWorkOrderAdapter creates a new WorkOrderAdapter with the given service.
func NewWorkOrderAdapter(service primary.WorkOrderService, out io.Writer) *WorkOrderAdapter {
	return &WorkOrderAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new work order.
func (a *WorkOrderAdapter) Create(ctx context.Context, req primary.CreateWorkOrderRequest) error {
	resp, err := a.service.CreateWorkOrder(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created work order %s (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Show displays details for a single work order.
func (a *WorkOrderAdapter) Show(ctx context.Context, workOrderID string) error {
	wo, err := a.service.GetWorkOrder(ctx, workOrderID)
	if err != nil {
		return fmt.Errorf("failed to get work order: %w", err)
	}

	fmt.Fprintf(a.out, "\nWork Order: %s\n", wo.ID)
	fmt.Fprintf(a.out, "Site:       %s\n", wo.SiteID)
	fmt.Fprintf(a.out, "Equipment:  %s\n", wo.EquipmentUID)
	fmt.Fprintf(a.out, "Type:       %s\n", wo.JobType)
	fmt.Fprintf(a.out, "Status:     %s\n", statusLabel(wo.Status))
	if wo.PlannedStart != "" {
		fmt.Fprintf(a.out, "Planned:    %s to %s\n", wo.PlannedStart, wo.PlannedEnd)
	}
	if len(wo.RequiredCerts) > 0 {
		fmt.Fprintf(a.out, "Certs:      %s\n", strings.Join(wo.RequiredCerts, ", "))
	}
	if wo.EmployeeID != "" {
		fmt.Fprintf(a.out, "Assigned:   %s\n", wo.EmployeeID)
	}
	fmt.Fprintf(a.out, "Created by: %s at %s\n", wo.CreatedBy, wo.CreatedAt)
	if wo.ApprovedBy != "" {
		fmt.Fprintf(a.out, "Approved by: %s\n", wo.ApprovedBy)
	}
	if wo.UpdatedAt != "" {
		fmt.Fprintf(a.out, "Updated:    %s\n", wo.UpdatedAt)
	}
	fmt.Fprintln(a.out)

	return nil
}

// List lists work orders with optional site and status filters.
func (a *WorkOrderAdapter) List(ctx context.Context, siteID, status string, limit int) error {
	workOrders, err := a.service.ListWorkOrders(ctx, primary.WorkOrderFilters{
		SiteID: siteID,
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list work orders: %w", err)
	}

	if len(workOrders) == 0 {
		fmt.Fprintln(a.out, "No work orders found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-8s %-10s %-14s %-18s %-12s %s\n", "ID", "SITE", "EQUIPMENT", "STATUS", "TYPE", "ASSIGNED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────")
	for _, wo := range workOrders {
		fmt.Fprintf(a.out, "%-8s %-10s %-14s %-18s %-12s %s\n",
			wo.ID, wo.SiteID, wo.EquipmentUID, wo.Status, wo.JobType, wo.EmployeeID)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Submit moves a draft into the approval queue.
func (a *WorkOrderAdapter) Submit(ctx context.Context, workOrderID string) error {
	resp, err := a.service.SubmitWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s submitted (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Approve approves a pending work order.
func (a *WorkOrderAdapter) Approve(ctx context.Context, workOrderID, adminID string) error {
	resp, err := a.service.ApproveWorkOrder(ctx, primary.ApproveWorkOrderRequest{
		WorkOrderID: workOrderID,
		AdminID:     adminID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s approved (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Reject rejects a pending work order.
func (a *WorkOrderAdapter) Reject(ctx context.Context, workOrderID string) error {
	resp, err := a.service.RejectWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s rejected (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Schedule marks an approved work order as scheduled.
func (a *WorkOrderAdapter) Schedule(ctx context.Context, workOrderID string) error {
	resp, err := a.service.ScheduleWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s scheduled (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Start begins execution of a scheduled work order.
func (a *WorkOrderAdapter) Start(ctx context.Context, workOrderID string) error {
	resp, err := a.service.StartWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s started (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Complete finishes an in-progress work order.
func (a *WorkOrderAdapter) Complete(ctx context.Context, workOrderID string) error {
	resp, err := a.service.CompleteWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s completed (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// Cancel cancels any non-terminal work order.
func (a *WorkOrderAdapter) Cancel(ctx context.Context, workOrderID string) error {
	resp, err := a.service.CancelWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %s cancelled (%s)\n", resp.WorkOrderID, statusLabel(resp.Status))
	return nil
}

// statusLabel colors a status for terminal output.
func statusLabel(status string) string {
	switch status {
	case "APPROVED", "DONE":
		return color.New(color.FgGreen).Sprint(status)
	case "PENDING_APPROVAL", "DRAFT":
		return color.New(color.FgYellow).Sprint(status)
	case "REJECTED":
		return color.New(color.FgRed).Sprint(status)
	case "SCHEDULED", "IN_PROGRESS":
		return color.New(color.FgCyan).Sprint(status)
	default:
		return status
	}
}
