package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/sitedesk/internal/wire"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inspect spare parts inventory",
}

var inventoryLowCmd = &cobra.Command{
	Use:   "low",
	Short: "List parts at or below their reorder level",
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, _ := cmd.Flags().GetString("site")
		if siteID == "" {
			siteID = wire.Config().DefaultSiteID
		}

		return wire.ChatAdapter().LowStock(actorContext(cmd), siteID)
	},
}

// InventoryCmd returns the inventory command
func InventoryCmd() *cobra.Command {
	addActorFlags(inventoryCmd)

	inventoryLowCmd.Flags().String("site", "", "Site ID (defaults to configured site)")

	inventoryCmd.AddCommand(inventoryLowCmd)

	return inventoryCmd
}
