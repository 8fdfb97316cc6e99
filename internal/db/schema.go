package db

// SchemaSQL is the complete modern schema for fresh installs. It reflects the
// current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL() so repository code that references a column
// that doesn't exist here fails immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Work orders (the persistent lifecycle entity)
CREATE TABLE IF NOT EXISTS work_orders (
	id TEXT PRIMARY KEY,
	site_id TEXT NOT NULL,
	equipment_uid TEXT NOT NULL,
	job_type TEXT NOT NULL,
	planned_start DATETIME,
	planned_end DATETIME,
	required_certs TEXT,
	employee_id TEXT,
	status TEXT NOT NULL CHECK(status IN ('DRAFT', 'PENDING_APPROVAL', 'APPROVED', 'SCHEDULED', 'IN_PROGRESS', 'DONE', 'REJECTED')) DEFAULT 'PENDING_APPROVAL',
	version INTEGER NOT NULL DEFAULT 1,
	created_by TEXT NOT NULL,
	approved_by TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_work_orders_site ON work_orders(site_id);
CREATE INDEX IF NOT EXISTS idx_work_orders_status ON work_orders(status);

-- Audit logs (durable trail of every mutation)
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
);

CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs(entity_id);
`

// maxMigrationVersion must match the highest version in migrations.
const maxMigrationVersion = 2

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		var oldTableCount int
		err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='work_orders'").Scan(&oldTableCount)
		if err != nil {
			return err
		}

		if oldTableCount > 0 {
			// Pre-versioning install - run migrations to upgrade
			return RunMigrations()
		}

		// Completely fresh install - create modern schema directly and mark
		// all migrations as applied so they never run against it
		_, err = db.Exec(SchemaSQL)
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
			return err
		}
		for i := 1; i <= maxMigrationVersion; i++ {
			_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", i)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
