package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration. Up runs inside the same
// transaction that records the version, so a failed migration leaves no
// partial schema behind.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_audit_logs_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_version_column_to_work_orders",
		Up:      migrationV2,
	},
}

// RunMigrations applies any pending migrations in order.
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 adds the audit_logs table for installs that predate auditing
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS audit_logs (
			id TEXT PRIMARY KEY,
			actor_id TEXT,
			actor_role TEXT,
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
			field_name TEXT,
			old_value TEXT,
			new_value TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create audit_logs: %w", err)
	}

	_, err = tx.Exec("CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs(entity_id)")
	if err != nil {
		return fmt.Errorf("failed to create audit_logs index: %w", err)
	}

	return nil
}

// migrationV2 adds the version column used for optimistic concurrency
func migrationV2(tx *sql.Tx) error {
	var colCount int
	err := tx.QueryRow("SELECT COUNT(*) FROM pragma_table_info('work_orders') WHERE name = 'version'").Scan(&colCount)
	if err != nil {
		return fmt.Errorf("failed to inspect work_orders columns: %w", err)
	}
	if colCount > 0 {
		return nil
	}

	_, err = tx.Exec("ALTER TABLE work_orders ADD COLUMN version INTEGER NOT NULL DEFAULT 1")
	if err != nil {
		return fmt.Errorf("failed to add version column: %w", err)
	}

	return nil
}
