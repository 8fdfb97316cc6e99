package app

import (
	"context"

	"github.com/example/sitedesk/internal/core/suggestion"
	coreworkorder "github.com/example/sitedesk/internal/core/workorder"
	"github.com/example/sitedesk/internal/ports/primary"
	"github.com/example/sitedesk/internal/ports/secondary"
)

// ChatServiceImpl implements the ChatService interface.
type ChatServiceImpl struct {
	backend secondary.QueryBackend
}

// NewChatService creates a new ChatService with injected dependencies.
func NewChatService(backend secondary.QueryBackend) *ChatServiceImpl {
	return &ChatServiceImpl{backend: backend}
}

// Query runs one conversation turn. The answer and evidence pass through from
// the backend; the work order suggestion is assembled locally from the checks
// so it stays deterministic with respect to them.
func (s *ChatServiceImpl) Query(ctx context.Context, req primary.ChatRequest) (*primary.ChatResponse, error) {
	backendReq := secondary.QueryRequest{
		Message:      req.Message,
		SiteID:       req.SiteID,
		EquipmentUID: req.EquipmentUID,
	}
	if req.DateRange != nil {
		backendReq.DateRange = &secondary.DateRange{
			Start: req.DateRange.Start,
			End:   req.DateRange.End,
		}
	}

	result, err := s.backend.Query(ctx, backendReq)
	if err != nil {
		return nil, &coreworkorder.UpstreamError{Op: "query backend", Err: err}
	}

	resp := &primary.ChatResponse{
		Answer:   result.Answer,
		Evidence: result.Evidence,
		Checks:   result.Checks,
	}

	if result.Checks != nil {
		in := suggestion.AssembleInput{
			SiteID:       req.SiteID,
			EquipmentUID: req.EquipmentUID,
			Checks:       *result.Checks,
		}
		// The backend's own suggestion is consumed only for its job-type
		// classification; everything else is re-derived from the checks.
		if result.SuggestedWorkOrder != nil {
			in.JobTypeHint = result.SuggestedWorkOrder.JobType
		}
		resp.SuggestedWorkOrder = suggestion.Assemble(in)
	}

	return resp, nil
}

// Ensure ChatServiceImpl implements the interface
var _ primary.ChatService = (*ChatServiceImpl)(nil)
