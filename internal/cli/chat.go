package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/sitedesk/internal/ports/primary"
	"github.com/example/sitedesk/internal/wire"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Ask the maintenance assistant a question",
	Long: `Send a natural-language query about schedules, staffing, or spare parts.

Answers may include structured checks (schedule, staff availability,
inventory) and a suggested work order assembled from them. Suggestions are
advisory; nothing is persisted until you accept one with 'wo create'.

Examples:
  sitedesk chat what maintenance is due for EQ-100 --site SITE-A --equipment EQ-100
  sitedesk chat anything due this month --from 2026-02-01 --to 2026-02-28`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, _ := cmd.Flags().GetString("site")
		equipment, _ := cmd.Flags().GetString("equipment")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		if siteID == "" {
			siteID = wire.Config().DefaultSiteID
		}

		req := primary.ChatRequest{
			Message:      strings.Join(args, " "),
			SiteID:       siteID,
			EquipmentUID: equipment,
		}
		if from != "" || to != "" {
			req.DateRange = &primary.DateRange{Start: from, End: to}
		}

		return wire.ChatAdapter().Query(actorContext(cmd), req)
	},
}

// ChatCmd returns the chat command
func ChatCmd() *cobra.Command {
	addActorFlags(chatCmd)

	chatCmd.Flags().String("site", "", "Site ID (defaults to configured site)")
	chatCmd.Flags().String("equipment", "", "Equipment UID the question is about")
	chatCmd.Flags().String("from", "", "Window start (YYYY-MM-DD)")
	chatCmd.Flags().String("to", "", "Window end (YYYY-MM-DD)")

	return chatCmd
}
