// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the outside world
// drives the application.
package primary

import "context"

// WorkOrderService defines the primary port for work order operations.
// Implementations live in the application layer, adapters in the CLI layer.
// Caller identity (actor ID + role) arrives out-of-band via context metadata
// and is the sole input to the authorization guards.
type WorkOrderService interface {
	// CreateWorkOrder admits a work order candidate. The initial status is
	// determined by the caller's role: an elevated creator is self-approved,
	// everyone else waits in PENDING_APPROVAL. An explicit draft save lands
	// in DRAFT.
	CreateWorkOrder(ctx context.Context, req CreateWorkOrderRequest) (*CreateWorkOrderResponse, error)

	// GetWorkOrder retrieves a work order by ID.
	GetWorkOrder(ctx context.Context, workOrderID string) (*WorkOrder, error)

	// ListWorkOrders lists work orders with optional filters.
	ListWorkOrders(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrder, error)

	// SubmitWorkOrder moves a draft into the approval queue.
	SubmitWorkOrder(ctx context.Context, workOrderID string) (*TransitionResponse, error)

	// ApproveWorkOrder approves a pending work order, stamping the approver.
	// Requires the elevated role.
	ApproveWorkOrder(ctx context.Context, req ApproveWorkOrderRequest) (*TransitionResponse, error)

	// RejectWorkOrder rejects a pending work order. Requires the elevated role.
	RejectWorkOrder(ctx context.Context, workOrderID string) (*TransitionResponse, error)

	// ScheduleWorkOrder marks an approved work order as scheduled.
	ScheduleWorkOrder(ctx context.Context, workOrderID string) (*TransitionResponse, error)

	// StartWorkOrder begins execution of a scheduled work order.
	StartWorkOrder(ctx context.Context, workOrderID string) (*TransitionResponse, error)

	// CompleteWorkOrder finishes an in-progress work order.
	CompleteWorkOrder(ctx context.Context, workOrderID string) (*TransitionResponse, error)

	// CancelWorkOrder administratively cancels any non-terminal work order.
	CancelWorkOrder(ctx context.Context, workOrderID string) (*TransitionResponse, error)
}

// CreateWorkOrderRequest contains the candidate fields for a new work order.
type CreateWorkOrderRequest struct {
	SiteID        string
	EquipmentUID  string
	JobType       string
	PlannedStart  string // RFC3339, optional
	PlannedEnd    string // RFC3339, optional
	RequiredCerts []string
	EmployeeID    string
	CreatedBy     string

	// AsDraft saves the work order as a pre-submission draft instead of
	// entering the approval flow.
	AsDraft bool
}

// CreateWorkOrderResponse contains the result of admitting a work order.
type CreateWorkOrderResponse struct {
	WorkOrderID string
	Status      string
	WorkOrder   *WorkOrder
}

// ApproveWorkOrderRequest contains parameters for approving a work order.
type ApproveWorkOrderRequest struct {
	WorkOrderID string
	AdminID     string // stamped as approved_by
}

// TransitionResponse contains the outcome of a lifecycle transition.
type TransitionResponse struct {
	WorkOrderID string
	Status      string
}

// WorkOrder represents a work order entity at the port boundary.
type WorkOrder struct {
	ID            string
	SiteID        string
	EquipmentUID  string
	JobType       string
	PlannedStart  string
	PlannedEnd    string
	RequiredCerts []string
	EmployeeID    string
	Status        string
	CreatedBy     string
	ApprovedBy    string
	CreatedAt     string
	UpdatedAt     string
}

// WorkOrderFilters contains filter options for listing work orders.
type WorkOrderFilters struct {
	SiteID string
	Status string
	Limit  int
}
