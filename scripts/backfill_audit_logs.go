// +build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// WorkOrder represents a work order record from the database
type WorkOrder struct {
	ID        string
	SiteID    sql.NullString
	Status    string
	CreatedBy string
	CreatedAt string
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview backfill without executing")
	flag.Parse()

	// Find sitedesk database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	dbPath := filepath.Join(homeDir, ".sitedesk", "sitedesk.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Find work orders with no create entry in the audit log. These predate
	// the audit_logs table.
	orders, err := findUnloggedWorkOrders(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding work orders: %v\n", err)
		os.Exit(1)
	}

	if len(orders) == 0 {
		fmt.Println("No work orders found to backfill")
		return
	}

	fmt.Printf("Found %d work order(s) without a create log entry:\n\n", len(orders))

	for _, wo := range orders {
		fmt.Printf("  %s: %s (created %s by %s)\n", wo.ID, wo.Status, wo.CreatedAt, wo.CreatedBy)
	}
	fmt.Println()

	if *dryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		return
	}

	fmt.Println("=== Executing backfill ===")
	fmt.Println()

	backfilled := 0
	for _, wo := range orders {
		err := backfillWorkOrder(db, wo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error backfilling %s: %v\n", wo.ID, err)
			continue
		}

		fmt.Printf("✓ Logged create for %s\n", wo.ID)
		backfilled++
	}

	fmt.Printf("\n=== Backfill complete: %d/%d work orders logged ===\n", backfilled, len(orders))
}

func findUnloggedWorkOrders(db *sql.DB) ([]WorkOrder, error) {
	query := `
		SELECT w.id, w.site_id, w.status, w.created_by, w.created_at
		FROM work_orders w
		WHERE NOT EXISTS (
			SELECT 1 FROM audit_logs a
			WHERE a.entity_type = 'work_order' AND a.entity_id = w.id AND a.action = 'create'
		)
		ORDER BY w.id ASC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []WorkOrder
	for rows.Next() {
		var wo WorkOrder
		err := rows.Scan(&wo.ID, &wo.SiteID, &wo.Status, &wo.CreatedBy, &wo.CreatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	return orders, rows.Err()
}

func backfillWorkOrder(db *sql.DB, wo WorkOrder) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Generate log ID
	var maxID int
	err = tx.QueryRow("SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM audit_logs").Scan(&maxID)
	if err != nil {
		return err
	}
	logID := fmt.Sprintf("LOG-%06d", maxID+1)

	// Backdate the entry to the work order's creation time
	_, err = tx.Exec(`
		INSERT INTO audit_logs (id, entity_type, entity_id, action, actor_id, actor_role, created_at)
		VALUES (?, 'work_order', ?, 'create', ?, 'user', ?)
	`, logID, wo.ID, wo.CreatedBy, wo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create log entry: %w", err)
	}

	return tx.Commit()
}
