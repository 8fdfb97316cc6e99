package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/sitedesk/internal/cli"
	"github.com/example/sitedesk/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "sitedesk",
		Short:   "sitedesk - maintenance operator console",
		Version: version.String(),
		Long: `sitedesk is a CLI console for multi-site maintenance operations.
It answers schedule, staffing, and inventory questions through the query
backend and manages work orders through their approval lifecycle.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ChatCmd())
	rootCmd.AddCommand(cli.WorkOrderCmd())
	rootCmd.AddCommand(cli.InventoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
