package primary

import (
	"context"

	"github.com/example/sitedesk/internal/core/suggestion"
)

// ChatService defines the primary port for conversational queries. The
// answer and evidence come from the query backend untouched; the suggested
// work order is derived locally from the checks side-channel.
type ChatService interface {
	// Query sends a natural-language query and returns the answer plus any
	// structured checks and derived work order suggestion.
	Query(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// DateRange bounds a query to a window of interest.
type DateRange struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
}

// ChatRequest contains a conversational query with optional site/equipment
// context.
type ChatRequest struct {
	Message      string
	SiteID       string
	EquipmentUID string
	DateRange    *DateRange
}

// ChatResponse is the outcome of one conversation turn. Checks and the
// suggestion are query-scoped: they carry no lifecycle beyond this turn.
type ChatResponse struct {
	Answer             string
	Evidence           []suggestion.Evidence
	Checks             *suggestion.Checks
	SuggestedWorkOrder *suggestion.SuggestedWorkOrder
}
