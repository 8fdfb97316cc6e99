// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// WorkOrderRepository defines the secondary port for work order persistence.
type WorkOrderRepository interface {
	// Create persists a new work order.
	Create(ctx context.Context, record *WorkOrderRecord) error

	// GetByID retrieves a work order by its ID.
	GetByID(ctx context.Context, id string) (*WorkOrderRecord, error)

	// List retrieves work orders matching the given filters.
	List(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrderRecord, error)

	// MaxWorkOrderNumber returns the highest work order number in the store,
	// 0 when empty. Used for ID generation.
	MaxWorkOrderNumber(ctx context.Context) (int, error)

	// ApplyTransition applies a status update conditioned on the version the
	// caller read. Either the whole update applies (status, approved_by when
	// set, updated_at when set, version bump) or nothing does. A version
	// mismatch on an existing row yields a conflict error.
	ApplyTransition(ctx context.Context, update TransitionUpdate) error
}

// WorkOrderRecord represents a work order as stored in persistence.
// Timestamps are RFC3339 strings.
type WorkOrderRecord struct {
	ID            string
	SiteID        string
	EquipmentUID  string
	JobType       string
	PlannedStart  string
	PlannedEnd    string
	RequiredCerts []string
	EmployeeID    string
	Status        string
	Version       int
	CreatedBy     string
	ApprovedBy    string
	CreatedAt     string
	UpdatedAt     string
}

// WorkOrderFilters contains filter options for querying work orders.
type WorkOrderFilters struct {
	SiteID string
	Status string
	Limit  int
}

// TransitionUpdate describes one atomic lifecycle update. FromVersion is the
// version of the record the transition was computed against; per-entity
// serialization is enforced by conditioning the update on it.
type TransitionUpdate struct {
	WorkOrderID string
	FromVersion int
	NewStatus   string
	ApprovedBy  string // set only by approve
	UpdatedAt   string // empty leaves updated_at untouched
}

// AuditLogRepository defines the secondary port for the durable audit trail.
type AuditLogRepository interface {
	// Create persists a new audit log entry.
	Create(ctx context.Context, record *AuditLogRecord) error

	// GetNextID returns the next available log entry ID.
	GetNextID(ctx context.Context) (string, error)

	// ListByEntity retrieves log entries for an entity, oldest first.
	ListByEntity(ctx context.Context, entityID string) ([]*AuditLogRecord, error)
}

// AuditLogRecord represents one audited mutation.
type AuditLogRecord struct {
	ID         string
	ActorID    string
	ActorRole  string
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
