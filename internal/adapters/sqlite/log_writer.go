package sqlite

import (
	"context"

	"github.com/example/sitedesk/internal/ctxutil"
	"github.com/example/sitedesk/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using AuditLogRepository.
type LogWriterAdapter struct {
	auditRepo secondary.AuditLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(auditRepo secondary.AuditLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{auditRepo: auditRepo}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.writeLog(ctx, entityType, entityID, "create", "", "", "")
}

// LogUpdate logs an update operation for an entity field.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	return w.writeLog(ctx, entityType, entityID, "update", fieldName, oldValue, newValue)
}

// writeLog writes a log entry with common logic.
func (w *LogWriterAdapter) writeLog(ctx context.Context, entityType, entityID, action, fieldName, oldValue, newValue string) error {
	actor := ctxutil.ActorFromContext(ctx)

	id, err := w.auditRepo.GetNextID(ctx)
	if err != nil {
		return err
	}

	record := &secondary.AuditLogRecord{
		ID:         id,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	return w.auditRepo.Create(ctx, record)
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
