package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/sitedesk/internal/db"
)

// setupTestDB opens an in-memory database with the authoritative schema.
// Tests must not hardcode their own CREATE TABLE statements; drift between
// repository code and the schema shows up here as "no such column".
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := conn.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}
