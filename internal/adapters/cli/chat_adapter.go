package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/sitedesk/internal/core/suggestion"
	"github.com/example/sitedesk/internal/ports/primary"
)

// ChatAdapter translates CLI chat operations to ChatService calls and
// renders answers, checks, and suggestions for the terminal.
type ChatAdapter struct {
	service primary.ChatService
	out     io.Writer
}

// NewChatAdapter creates a new ChatAdapter with the given service.
func NewChatAdapter(service primary.ChatService, out io.Writer) *ChatAdapter {
	return &ChatAdapter{
		service: service,
		out:     out,
	}
}

// Query runs one conversation turn and renders the full response.
func (a *ChatAdapter) Query(ctx context.Context, req primary.ChatRequest) error {
	resp, err := a.service.Query(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s\n", resp.Answer)

	if len(resp.Evidence) > 0 {
		fmt.Fprintln(a.out, "\nSources:")
		for _, ev := range resp.Evidence {
			ref := ev.Source
			if ev.Section != "" {
				ref += " · " + ev.Section
			}
			fmt.Fprintf(a.out, "  - %s: %s\n", ref, ev.Snippet)
		}
	}

	if resp.Checks != nil {
		a.renderChecks(resp.Checks)
	}

	if resp.SuggestedWorkOrder != nil {
		a.renderSuggestion(resp.SuggestedWorkOrder)
	}

	fmt.Fprintln(a.out)
	return nil
}

// LowStock queries for inventory levels and renders only the items at or
// below their reorder level.
func (a *ChatAdapter) LowStock(ctx context.Context, siteID string) error {
	resp, err := a.service.Query(ctx, primary.ChatRequest{
		Message: "spare parts inventory status",
		SiteID:  siteID,
	})
	if err != nil {
		return err
	}

	if resp.Checks == nil || len(resp.Checks.Inventory) == 0 {
		fmt.Fprintln(a.out, "No inventory data available")
		return nil
	}

	low := suggestion.LowStock(resp.Checks.Inventory)
	if len(low) == 0 {
		fmt.Fprintln(a.out, "All parts are above their reorder levels")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-20s %6s %8s\n", "PART", "NAME", "QTY", "REORDER")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────")
	for _, item := range low {
		fmt.Fprintf(a.out, "%-10s %-20s %6d %8d %s\n",
			item.PartID, item.PartName, item.Qty, suggestion.ReorderThreshold(item), lowMarker())
	}
	fmt.Fprintln(a.out)

	return nil
}

func (a *ChatAdapter) renderChecks(checks *suggestion.Checks) {
	if checks.Schedule != nil {
		s := checks.Schedule
		fmt.Fprintf(a.out, "\nSchedule: %s next due %s", s.EquipmentUID, s.NextDate)
		if s.EstDurationMin > 0 {
			fmt.Fprintf(a.out, " (~%d min)", s.EstDurationMin)
		}
		if len(s.RequiredCerts) > 0 {
			fmt.Fprintf(a.out, ", requires %s", strings.Join(s.RequiredCerts, ", "))
		}
		fmt.Fprintln(a.out)
	}

	if len(checks.Employees) > 0 {
		fmt.Fprintln(a.out, "\nStaff:")
		for _, emp := range checks.Employees {
			if suggestion.IsAvailable(emp) {
				fmt.Fprintf(a.out, "  %s %s (%s) available\n", color.New(color.FgGreen).Sprint("✓"), emp.Name, emp.EmployeeID)
			} else {
				fmt.Fprintf(a.out, "  %s %s (%s) %d conflict(s)\n", color.New(color.FgRed).Sprint("✗"), emp.Name, emp.EmployeeID, len(emp.Conflicts))
			}
		}
	}

	if len(checks.Inventory) > 0 {
		fmt.Fprintln(a.out, "\nParts:")
		for _, item := range checks.Inventory {
			line := fmt.Sprintf("  %s %s: %d on hand", item.PartID, item.PartName, item.Qty)
			if suggestion.IsLowStock(item) {
				line += " " + lowMarker()
			}
			fmt.Fprintln(a.out, line)
		}
	}
}

func (a *ChatAdapter) renderSuggestion(wo *suggestion.SuggestedWorkOrder) {
	fmt.Fprintln(a.out, "\nSuggested work order:")
	fmt.Fprintf(a.out, "  Site:      %s\n", wo.SiteID)
	fmt.Fprintf(a.out, "  Equipment: %s\n", wo.EquipmentUID)
	fmt.Fprintf(a.out, "  Type:      %s\n", wo.JobType)
	if wo.PlannedStart != "" {
		fmt.Fprintf(a.out, "  Window:    %s to %s\n", wo.PlannedStart, wo.PlannedEnd)
	}
	if len(wo.RequiredCerts) > 0 {
		fmt.Fprintf(a.out, "  Certs:     %s\n", strings.Join(wo.RequiredCerts, ", "))
	}
	if wo.EmployeeID != "" {
		fmt.Fprintf(a.out, "  Assigned:  %s\n", wo.EmployeeID)
	} else {
		fmt.Fprintf(a.out, "  Assigned:  %s\n", color.New(color.FgYellow).Sprint("(nobody available)"))
	}
	fmt.Fprintf(a.out, "\nAccept with: %s\n", acceptCommand(wo))
}

// acceptCommand builds the wo create invocation that accepts a suggestion.
func acceptCommand(wo *suggestion.SuggestedWorkOrder) string {
	parts := []string{
		"sitedesk wo create",
		"--site " + wo.SiteID,
		"--equipment " + wo.EquipmentUID,
		"--type " + wo.JobType,
	}
	if wo.PlannedStart != "" {
		parts = append(parts, "--start "+wo.PlannedStart, "--end "+wo.PlannedEnd)
	}
	if len(wo.RequiredCerts) > 0 {
		parts = append(parts, "--certs "+strings.Join(wo.RequiredCerts, ","))
	}
	if wo.EmployeeID != "" {
		parts = append(parts, "--employee "+wo.EmployeeID)
	}
	return strings.Join(parts, " ")
}

func lowMarker() string {
	return color.New(color.FgRed).Sprint("LOW")
}
