package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/sitedesk/internal/config"
	"github.com/example/sitedesk/internal/db"
	"github.com/example/sitedesk/internal/wire"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the sitedesk configuration and database",
	Long: `Write the default configuration, create the local database, and probe
the query backend.

Examples:
  sitedesk init
  sitedesk init --backend-url http://backend.internal:8000
  sitedesk init --canned --site SITE-A`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backendURL, _ := cmd.Flags().GetString("backend-url")
		canned, _ := cmd.Flags().GetBool("canned")
		siteID, _ := cmd.Flags().GetString("site")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if backendURL != "" {
			cfg.BackendURL = backendURL
		}
		if canned {
			cfg.BackendMode = config.BackendModeCanned
		}
		if siteID != "" {
			cfg.DefaultSiteID = siteID
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Config written to %s\n", dir)

		// Opening the database creates it and runs migrations
		if _, err := db.GetDB(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		dbPath, _ := db.GetDBPath()
		fmt.Printf("✓ Database ready at %s\n", dbPath)

		// Probe the query backend
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := wire.QueryBackend().Health(ctx); err != nil {
			fmt.Printf("⚠ Query backend not reachable: %v\n", err)
			fmt.Println("  Chat commands will fail until it is up. Use --canned for offline mode.")
			return nil
		}
		fmt.Printf("✓ Query backend reachable (%s mode)\n", cfg.BackendMode)

		return nil
	},
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	initCmd.Flags().String("backend-url", "", "Query backend base URL")
	initCmd.Flags().Bool("canned", false, "Use the offline canned backend")
	initCmd.Flags().String("site", "", "Default site ID for commands")

	return initCmd
}
