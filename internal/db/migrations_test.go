package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// openLegacyDB returns an in-memory database with the pre-versioning schema:
// work_orders without the version column and no audit_logs table.
func openLegacyDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`
		CREATE TABLE work_orders (
			id TEXT PRIMARY KEY,
			site_id TEXT NOT NULL,
			equipment_uid TEXT NOT NULL,
			job_type TEXT NOT NULL,
			status TEXT NOT NULL,
			created_by TEXT NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create legacy schema: %v", err)
	}

	return conn
}

func hasColumn(t *testing.T, conn *sql.DB, table, column string) bool {
	t.Helper()
	var count int
	err := conn.QueryRow("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column).Scan(&count)
	if err != nil {
		t.Fatalf("failed to inspect %s columns: %v", table, err)
	}
	return count > 0
}

func hasTable(t *testing.T, conn *sql.DB, table string) bool {
	t.Helper()
	var count int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
	if err != nil {
		t.Fatalf("failed to inspect tables: %v", err)
	}
	return count > 0
}

func TestMigrationV2_AddsVersionColumn(t *testing.T) {
	conn := openLegacyDB(t)

	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	if err := migrationV2(tx); err != nil {
		t.Fatalf("migrationV2 failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	if !hasColumn(t, conn, "work_orders", "version") {
		t.Error("expected version column after migration")
	}

	// Re-running against the migrated table is a no-op
	tx, err = conn.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	if err := migrationV2(tx); err != nil {
		t.Fatalf("expected re-run to be a no-op, got %v", err)
	}
	tx.Rollback()
}

func TestMigration_SchemaChangeRidesTransaction(t *testing.T) {
	conn := openLegacyDB(t)

	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	if err := migrationV1(tx); err != nil {
		t.Fatalf("migrationV1 failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("failed to roll back: %v", err)
	}

	// A rolled-back migration must leave no partial schema behind
	if hasTable(t, conn, "audit_logs") {
		t.Error("expected audit_logs to be rolled back with the transaction")
	}
}
