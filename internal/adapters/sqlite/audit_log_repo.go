package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/sitedesk/internal/ports/secondary"
)

// AuditLogRepository implements secondary.AuditLogRepository with SQLite.
type AuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new SQLite audit log repository.
func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create persists a new audit log entry.
func (r *AuditLogRepository) Create(ctx context.Context, record *secondary.AuditLogRecord) error {
	if record.ID == "" {
		return fmt.Errorf("audit log ID must be pre-populated")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (
			id, actor_id, actor_role, entity_type, entity_id, action,
			field_name, old_value, new_value
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, nullString(record.ActorID), nullString(record.ActorRole),
		record.EntityType, record.EntityID, record.Action,
		nullString(record.FieldName), nullString(record.OldValue), nullString(record.NewValue),
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetNextID returns the next available log entry ID.
func (r *AuditLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM audit_logs",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next audit log ID: %w", err)
	}

	return fmt.Sprintf("LOG-%06d", maxID+1), nil
}

// ListByEntity retrieves log entries for an entity, oldest first.
func (r *AuditLogRepository) ListByEntity(ctx context.Context, entityID string) ([]*secondary.AuditLogRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, actor_id, actor_role, entity_type, entity_id, action,
			field_name, old_value, new_value, created_at
		FROM audit_logs WHERE entity_id = ? ORDER BY created_at, id`,
		entityID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []*secondary.AuditLogRecord
	for rows.Next() {
		var (
			actorID   sql.NullString
			actorRole sql.NullString
			fieldName sql.NullString
			oldValue  sql.NullString
			newValue  sql.NullString
			createdAt sql.NullTime
		)

		record := &secondary.AuditLogRecord{}
		err := rows.Scan(
			&record.ID, &actorID, &actorRole, &record.EntityType, &record.EntityID,
			&record.Action, &fieldName, &oldValue, &newValue, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}

		record.ActorID = actorID.String
		record.ActorRole = actorRole.String
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time.UTC().Format(time.RFC3339)
		}

		logs = append(logs, record)
	}

	return logs, nil
}

// Ensure AuditLogRepository implements the interface
var _ secondary.AuditLogRepository = (*AuditLogRepository)(nil)
