package app

import (
	"context"
	"fmt"
	"time"

	coreworkorder "github.com/example/sitedesk/internal/core/workorder"
	"github.com/example/sitedesk/internal/ctxutil"
	"github.com/example/sitedesk/internal/ports/primary"
	"github.com/example/sitedesk/internal/ports/secondary"
)

// WorkOrderServiceImpl implements the WorkOrderService interface.
type WorkOrderServiceImpl struct {
	workOrderRepo secondary.WorkOrderRepository
	logWriter     secondary.LogWriter
}

// NewWorkOrderService creates a new WorkOrderService with injected dependencies.
func NewWorkOrderService(
	workOrderRepo secondary.WorkOrderRepository,
	logWriter secondary.LogWriter,
) *WorkOrderServiceImpl {
	return &WorkOrderServiceImpl{
		workOrderRepo: workOrderRepo,
		logWriter:     logWriter,
	}
}

// CreateWorkOrder admits a work order candidate into the lifecycle.
func (s *WorkOrderServiceImpl) CreateWorkOrder(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.CreateWorkOrderResponse, error) {
	actor := ctxutil.ActorFromContext(ctx)

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = actor.ID
	}

	// 1. Validate the candidate using core business rules
	draft := coreworkorder.Draft{
		SiteID:        req.SiteID,
		EquipmentUID:  req.EquipmentUID,
		JobType:       req.JobType,
		PlannedStart:  req.PlannedStart,
		PlannedEnd:    req.PlannedEnd,
		RequiredCerts: req.RequiredCerts,
		EmployeeID:    req.EmployeeID,
		CreatedBy:     createdBy,
	}
	if err := coreworkorder.ValidateDraft(draft); err != nil {
		return nil, err
	}

	// 2. Generate ID using core business rule
	maxNum, err := s.workOrderRepo.MaxWorkOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate work order ID: %w", err)
	}
	id := coreworkorder.GenerateWorkOrderID(maxNum)

	// 3. Determine initial status from the caller's role
	role := coreworkorder.Role(actor.Role)
	status := coreworkorder.InitialStatus(role, req.AsDraft)

	now := time.Now().UTC().Format(time.RFC3339)
	record := &secondary.WorkOrderRecord{
		ID:            id,
		SiteID:        req.SiteID,
		EquipmentUID:  req.EquipmentUID,
		JobType:       req.JobType,
		PlannedStart:  req.PlannedStart,
		PlannedEnd:    req.PlannedEnd,
		RequiredCerts: req.RequiredCerts,
		EmployeeID:    req.EmployeeID,
		Status:        string(status),
		Version:       1,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if coreworkorder.SelfApproved(role, req.AsDraft) {
		record.ApprovedBy = createdBy
	}

	if err := s.workOrderRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	if err := s.logWriter.LogCreate(ctx, "work_order", record.ID); err != nil {
		return nil, fmt.Errorf("failed to log work order creation: %w", err)
	}

	return &primary.CreateWorkOrderResponse{
		WorkOrderID: record.ID,
		Status:      record.Status,
		WorkOrder:   s.recordToWorkOrder(record),
	}, nil
}

// GetWorkOrder retrieves a work order by ID.
func (s *WorkOrderServiceImpl) GetWorkOrder(ctx context.Context, workOrderID string) (*primary.WorkOrder, error) {
	record, err := s.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("work order not found: %w", err)
	}
	return s.recordToWorkOrder(record), nil
}

// ListWorkOrders lists work orders with optional filters.
func (s *WorkOrderServiceImpl) ListWorkOrders(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error) {
	if filters.Status != "" && !coreworkorder.ValidStatus(coreworkorder.Status(filters.Status)) {
		return nil, &coreworkorder.ValidationError{Field: "status", Reason: "unknown status " + filters.Status}
	}

	records, err := s.workOrderRepo.List(ctx, secondary.WorkOrderFilters{
		SiteID: filters.SiteID,
		Status: filters.Status,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	workOrders := make([]*primary.WorkOrder, len(records))
	for i, r := range records {
		workOrders[i] = s.recordToWorkOrder(r)
	}
	return workOrders, nil
}

// SubmitWorkOrder moves a draft into the approval queue.
func (s *WorkOrderServiceImpl) SubmitWorkOrder(ctx context.Context, workOrderID string) (*primary.TransitionResponse, error) {
	return s.transition(ctx, workOrderID, coreworkorder.EventSubmit, "")
}

// ApproveWorkOrder approves a pending work order, stamping the approver.
func (s *WorkOrderServiceImpl) ApproveWorkOrder(ctx context.Context, req primary.ApproveWorkOrderRequest) (*primary.TransitionResponse, error) {
	return s.transition(ctx, req.WorkOrderID, coreworkorder.EventApprove, req.AdminID)
}

// RejectWorkOrder rejects a pending work order.
func (s *WorkOrderServiceImpl) RejectWorkOrder(ctx context.Context, workOrderID string) (*primary.TransitionResponse, error) {
	return s.transition(ctx, workOrderID, coreworkorder.EventReject, "")
}

// ScheduleWorkOrder marks an approved work order as scheduled.
func (s *WorkOrderServiceImpl) ScheduleWorkOrder(ctx context.Context, workOrderID string) (*primary.TransitionResponse, error) {
	return s.transition(ctx, workOrderID, coreworkorder.EventSchedule, "")
}

// StartWorkOrder begins execution of a scheduled work order.
func (s *WorkOrderServiceImpl) StartWorkOrder(ctx context.Context, workOrderID string) (*primary.TransitionResponse, error) {
	return s.transition(ctx, workOrderID, coreworkorder.EventStart, "")
}

// CompleteWorkOrder finishes an in-progress work order.
func (s *WorkOrderServiceImpl) CompleteWorkOrder(ctx context.Context, workOrderID string) (*primary.TransitionResponse, error) {
	return s.transition(ctx, workOrderID, coreworkorder.EventComplete, "")
}

// CancelWorkOrder administratively cancels any non-terminal work order.
func (s *WorkOrderServiceImpl) CancelWorkOrder(ctx context.Context, workOrderID string) (*primary.TransitionResponse, error) {
	return s.transition(ctx, workOrderID, coreworkorder.EventCancel, "")
}

// transition runs the shared lifecycle pipeline: fetch, guard, apply the pure
// transition, persist conditioned on the version read, audit. actorOverride
// lets approve stamp an explicit admin ID.
func (s *WorkOrderServiceImpl) transition(ctx context.Context, workOrderID string, event coreworkorder.Event, actorOverride string) (*primary.TransitionResponse, error) {
	actor := ctxutil.ActorFromContext(ctx)

	// 1. Guard check before touching state
	guardCtx := coreworkorder.GuardContext{
		Role:    coreworkorder.Role(actor.Role),
		ActorID: actor.ID,
	}
	if result := coreworkorder.CanInvoke(guardCtx, event); !result.Allowed {
		return nil, result.Err()
	}

	// 2. Fetch current state
	record, err := s.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("work order not found: %w", err)
	}

	// 3. Apply the transition (pure function)
	actorID := actor.ID
	if actorOverride != "" {
		actorID = actorOverride
	}
	result, err := coreworkorder.ApplyTransition(coreworkorder.Status(record.Status), event, actorID, time.Now())
	if err != nil {
		return nil, err
	}

	// 4. Persist atomically, conditioned on the version we read
	update := secondary.TransitionUpdate{
		WorkOrderID: workOrderID,
		FromVersion: record.Version,
		NewStatus:   string(result.NewStatus),
		ApprovedBy:  result.ApprovedBy,
		UpdatedAt:   result.UpdatedAt,
	}
	if err := s.workOrderRepo.ApplyTransition(ctx, update); err != nil {
		return nil, err
	}

	if err := s.logWriter.LogUpdate(ctx, "work_order", workOrderID, "status", record.Status, string(result.NewStatus)); err != nil {
		return nil, fmt.Errorf("failed to log status change: %w", err)
	}

	return &primary.TransitionResponse{
		WorkOrderID: workOrderID,
		Status:      string(result.NewStatus),
	}, nil
}

// Helper methods

func (s *WorkOrderServiceImpl) recordToWorkOrder(r *secondary.WorkOrderRecord) *primary.WorkOrder {
	return &primary.WorkOrder{
		ID:            r.ID,
		SiteID:        r.SiteID,
		EquipmentUID:  r.EquipmentUID,
		JobType:       r.JobType,
		PlannedStart:  r.PlannedStart,
		PlannedEnd:    r.PlannedEnd,
		RequiredCerts: r.RequiredCerts,
		EmployeeID:    r.EmployeeID,
		Status:        r.Status,
		CreatedBy:     r.CreatedBy,
		ApprovedBy:    r.ApprovedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Ensure WorkOrderServiceImpl implements the interface
var _ primary.WorkOrderService = (*WorkOrderServiceImpl)(nil)
