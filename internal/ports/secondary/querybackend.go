package secondary

import (
	"context"

	"github.com/example/sitedesk/internal/core/suggestion"
)

// QueryBackend defines the secondary port for the conversational
// query/retrieval collaborator. One implementation speaks to the live
// backend over its transport; another serves canned fixtures for offline
// use. Call sites never branch on which is wired.
type QueryBackend interface {
	// Query submits a natural-language query with optional context and
	// returns the answer plus structured side-channel data.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)

	// Health reports whether the backend is reachable.
	Health(ctx context.Context) error
}

// DateRange bounds a query to a window of interest. The backend's wire
// contract carries it as a nested object, so it must stay a struct here
// rather than flattened fields.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// QueryRequest is the boundary contract for one query turn.
type QueryRequest struct {
	Message      string     `json:"message"`
	SiteID       string     `json:"site_id,omitempty"`
	EquipmentUID string     `json:"equipment_uid,omitempty"`
	DateRange    *DateRange `json:"date_range,omitempty"`
}

// QueryResult is the backend's response: an answer, optional retrieval
// evidence, optional checks, and the backend's own work order suggestion
// (consumed only for its job-type classification).
type QueryResult struct {
	Answer             string                         `json:"answer"`
	Evidence           []suggestion.Evidence          `json:"evidence,omitempty"`
	Checks             *suggestion.Checks             `json:"checks,omitempty"`
	SuggestedWorkOrder *suggestion.SuggestedWorkOrder `json:"suggested_work_order,omitempty"`
}
