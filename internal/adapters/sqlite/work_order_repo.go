// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	coreworkorder "github.com/example/sitedesk/internal/core/workorder"
	"github.com/example/sitedesk/internal/ports/secondary"
)

// WorkOrderRepository implements secondary.WorkOrderRepository with SQLite.
type WorkOrderRepository struct {
	db *sql.DB
}

// NewWorkOrderRepository creates a new SQLite work order repository.
func NewWorkOrderRepository(db *sql.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create persists a new work order.
// The record must have ID and Status pre-populated by the service layer.
func (r *WorkOrderRepository) Create(ctx context.Context, record *secondary.WorkOrderRecord) error {
	if record.ID == "" {
		return fmt.Errorf("work order ID must be pre-populated by service layer")
	}
	if record.Status == "" {
		return fmt.Errorf("work order Status must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO work_orders (
			id, site_id, equipment_uid, job_type, planned_start, planned_end,
			required_certs, employee_id, status, version, created_by, approved_by,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.SiteID, record.EquipmentUID, record.JobType,
		nullTimestamp(record.PlannedStart), nullTimestamp(record.PlannedEnd),
		nullJoined(record.RequiredCerts), nullString(record.EmployeeID),
		record.Status, record.Version, record.CreatedBy, nullString(record.ApprovedBy),
		nullTimestamp(record.CreatedAt), nullTimestamp(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create work order: %w", err)
	}

	return nil
}

// GetByID retrieves a work order by its ID.
func (r *WorkOrderRepository) GetByID(ctx context.Context, id string) (*secondary.WorkOrderRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, site_id, equipment_uid, job_type, planned_start, planned_end,
			required_certs, employee_id, status, version, created_by, approved_by,
			created_at, updated_at
		FROM work_orders WHERE id = ?`,
		id,
	)

	record, err := scanWorkOrder(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("work order %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	return record, nil
}

// List retrieves work orders matching the given filters.
func (r *WorkOrderRepository) List(ctx context.Context, filters secondary.WorkOrderFilters) ([]*secondary.WorkOrderRecord, error) {
	query := `SELECT id, site_id, equipment_uid, job_type, planned_start, planned_end,
		required_certs, employee_id, status, version, created_by, approved_by,
		created_at, updated_at
	FROM work_orders WHERE 1=1`
	args := []any{}

	if filters.SiteID != "" {
		query += " AND site_id = ?"
		args = append(args, filters.SiteID)
	}
	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY id"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	var workOrders []*secondary.WorkOrderRecord
	for rows.Next() {
		record, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		workOrders = append(workOrders, record)
	}

	return workOrders, nil
}

// MaxWorkOrderNumber returns the highest work order number in the store.
func (r *WorkOrderRepository) MaxWorkOrderNumber(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 4) AS INTEGER)), 0) FROM work_orders",
	).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to get max work order number: %w", err)
	}

	return maxID, nil
}

// ApplyTransition applies a status update conditioned on the version the
// caller read. The version predicate makes concurrent transitions on the same
// work order serialize: the loser's update matches zero rows.
func (r *WorkOrderRepository) ApplyTransition(ctx context.Context, update secondary.TransitionUpdate) error {
	query := "UPDATE work_orders SET status = ?, version = version + 1"
	args := []any{update.NewStatus}

	if update.ApprovedBy != "" {
		query += ", approved_by = ?"
		args = append(args, update.ApprovedBy)
	}
	if update.UpdatedAt != "" {
		query += ", updated_at = ?"
		args = append(args, nullTimestamp(update.UpdatedAt))
	}

	query += " WHERE id = ? AND version = ?"
	args = append(args, update.WorkOrderID, update.FromVersion)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to apply transition: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		var exists int
		err := r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM work_orders WHERE id = ?",
			update.WorkOrderID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check work order existence: %w", err)
		}
		if exists > 0 {
			return &coreworkorder.ConflictError{WorkOrderID: update.WorkOrderID}
		}
		return fmt.Errorf("work order %s not found", update.WorkOrderID)
	}

	return nil
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkOrder(s scanner) (*secondary.WorkOrderRecord, error) {
	var (
		plannedStart sql.NullTime
		plannedEnd   sql.NullTime
		certs        sql.NullString
		employeeID   sql.NullString
		approvedBy   sql.NullString
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	record := &secondary.WorkOrderRecord{}
	err := s.Scan(
		&record.ID, &record.SiteID, &record.EquipmentUID, &record.JobType,
		&plannedStart, &plannedEnd, &certs, &employeeID,
		&record.Status, &record.Version, &record.CreatedBy, &approvedBy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if plannedStart.Valid {
		record.PlannedStart = plannedStart.Time.UTC().Format(time.RFC3339)
	}
	if plannedEnd.Valid {
		record.PlannedEnd = plannedEnd.Time.UTC().Format(time.RFC3339)
	}
	if certs.Valid && certs.String != "" {
		record.RequiredCerts = strings.Split(certs.String, ",")
	}
	record.EmployeeID = employeeID.String
	record.ApprovedBy = approvedBy.String
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time.UTC().Format(time.RFC3339)
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time.UTC().Format(time.RFC3339)
	}

	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullJoined stores a cert list as a comma-joined string, NULL when empty.
func nullJoined(certs []string) sql.NullString {
	if len(certs) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(certs, ","), Valid: true}
}

func nullTimestamp(ts string) sql.NullTime {
	if ts == "" {
		return sql.NullTime{}
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// Ensure WorkOrderRepository implements the interface
var _ secondary.WorkOrderRepository = (*WorkOrderRepository)(nil)
