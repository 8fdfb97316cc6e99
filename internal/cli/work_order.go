package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/sitedesk/internal/ctxutil"
	"github.com/example/sitedesk/internal/ports/primary"
	"github.com/example/sitedesk/internal/wire"
)

var woCmd = &cobra.Command{
	Use:   "wo",
	Short: "Manage maintenance work orders",
	Long:  "Create, inspect, and move work orders through their lifecycle",
}

var woCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new work order",
	Long: `Create a new work order for a piece of equipment.

Admins create work orders pre-approved; everyone else's wait for approval.
Use --draft to save without entering the approval flow.

Examples:
  sitedesk wo create --site SITE-A --equipment EQ-100 --type PREVENTIVE
  sitedesk wo create --site SITE-A --equipment EQ-100 --type REPAIR --draft`,
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, _ := cmd.Flags().GetString("site")
		equipment, _ := cmd.Flags().GetString("equipment")
		jobType, _ := cmd.Flags().GetString("type")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		certs, _ := cmd.Flags().GetString("certs")
		employee, _ := cmd.Flags().GetString("employee")
		draft, _ := cmd.Flags().GetBool("draft")

		if siteID == "" {
			siteID = wire.Config().DefaultSiteID
		}

		ctx := actorContext(cmd)
		req := primary.CreateWorkOrderRequest{
			SiteID:       siteID,
			EquipmentUID: equipment,
			JobType:      jobType,
			PlannedStart: start,
			PlannedEnd:   end,
			EmployeeID:   employee,
			CreatedBy:    ctxutil.ActorFromContext(ctx).ID,
			AsDraft:      draft,
		}
		if certs != "" {
			req.RequiredCerts = strings.Split(certs, ",")
		}

		return wire.WorkOrderAdapter().Create(ctx, req)
	},
}

var woShowCmd = &cobra.Command{
	Use:   "show [work-order-id]",
	Short: "Show work order details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Show(actorContext(cmd), args[0])
	},
}

var woListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, _ := cmd.Flags().GetString("site")
		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		return wire.WorkOrderAdapter().List(actorContext(cmd), siteID, status, limit)
	},
}

var woSubmitCmd = &cobra.Command{
	Use:   "submit [work-order-id]",
	Short: "Submit a draft for approval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Submit(actorContext(cmd), args[0])
	},
}

var woApproveCmd = &cobra.Command{
	Use:   "approve [work-order-id]",
	Short: "Approve a pending work order (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := actorContext(cmd)
		adminID := ctxutil.ActorFromContext(ctx).ID
		return wire.WorkOrderAdapter().Approve(ctx, args[0], adminID)
	},
}

var woRejectCmd = &cobra.Command{
	Use:   "reject [work-order-id]",
	Short: "Reject a pending work order (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Reject(actorContext(cmd), args[0])
	},
}

var woScheduleCmd = &cobra.Command{
	Use:   "schedule [work-order-id]",
	Short: "Mark an approved work order as scheduled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Schedule(actorContext(cmd), args[0])
	},
}

var woStartCmd = &cobra.Command{
	Use:   "start [work-order-id]",
	Short: "Start a scheduled work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Start(actorContext(cmd), args[0])
	},
}

var woCompleteCmd = &cobra.Command{
	Use:   "complete [work-order-id]",
	Short: "Complete an in-progress work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Complete(actorContext(cmd), args[0])
	},
}

var woCancelCmd = &cobra.Command{
	Use:   "cancel [work-order-id]",
	Short: "Cancel a work order in any non-terminal state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkOrderAdapter().Cancel(actorContext(cmd), args[0])
	},
}

// WorkOrderCmd returns the wo command
func WorkOrderCmd() *cobra.Command {
	addActorFlags(woCmd)

	woCreateCmd.Flags().String("site", "", "Site ID (defaults to configured site)")
	woCreateCmd.Flags().String("equipment", "", "Equipment UID")
	woCreateCmd.Flags().String("type", "", "Job type (e.g. PREVENTIVE, REPAIR)")
	woCreateCmd.Flags().String("start", "", "Planned start (RFC3339)")
	woCreateCmd.Flags().String("end", "", "Planned end (RFC3339)")
	woCreateCmd.Flags().String("certs", "", "Required certifications, comma-separated")
	woCreateCmd.Flags().String("employee", "", "Assigned employee ID")
	woCreateCmd.Flags().Bool("draft", false, "Save as draft instead of submitting")

	woListCmd.Flags().String("site", "", "Filter by site ID")
	woListCmd.Flags().StringP("status", "s", "", "Filter by status")
	woListCmd.Flags().Int("limit", 0, "Limit number of results")

	woCmd.AddCommand(woCreateCmd)
	woCmd.AddCommand(woShowCmd)
	woCmd.AddCommand(woListCmd)
	woCmd.AddCommand(woSubmitCmd)
	woCmd.AddCommand(woApproveCmd)
	woCmd.AddCommand(woRejectCmd)
	woCmd.AddCommand(woScheduleCmd)
	woCmd.AddCommand(woStartCmd)
	woCmd.AddCommand(woCompleteCmd)
	woCmd.AddCommand(woCancelCmd)

	return woCmd
}
