package workorder

import "time"

// Event represents a lifecycle transition request.
type Event string

const (
	EventSubmit   Event = "submit"
	EventApprove  Event = "approve"
	EventReject   Event = "reject"
	EventSchedule Event = "schedule"
	EventStart    Event = "start"
	EventComplete Event = "complete"
	EventCancel   Event = "cancel"
)

// AllEvents lists every transition event.
var AllEvents = []Event{
	EventSubmit,
	EventApprove,
	EventReject,
	EventSchedule,
	EventStart,
	EventComplete,
	EventCancel,
}

// ValidEvent reports whether e is a known transition event.
func ValidEvent(e Event) bool {
	for _, known := range AllEvents {
		if e == known {
			return true
		}
	}
	return false
}

// transitions is the authoritative transition table. EventCancel is handled
// separately because it applies from any non-terminal state.
var transitions = map[Status]map[Event]Status{
	StatusDraft:           {EventSubmit: StatusPendingApproval},
	StatusPendingApproval: {EventApprove: StatusApproved, EventReject: StatusRejected},
	StatusApproved:        {EventSchedule: StatusScheduled},
	StatusScheduled:       {EventStart: StatusInProgress},
	StatusInProgress:      {EventComplete: StatusDone},
}

// Next returns the status reached by applying event to current, and whether
// the transition is permitted by the table.
func Next(current Status, event Event) (Status, bool) {
	if event == EventCancel {
		if IsTerminal(current) {
			return "", false
		}
		return StatusRejected, true
	}
	next, ok := transitions[current][event]
	return next, ok
}

// TransitionResult captures the full effect of a transition: the new status
// plus the provenance side effects the lifecycle table prescribes. Either the
// whole result is applied by the caller or none of it is.
type TransitionResult struct {
	NewStatus Status

	// ApprovedBy is set only by the approve event.
	ApprovedBy string

	// UpdatedAt is the RFC3339 timestamp to stamp, set only for events
	// whose side effect bumps updated_at (approve, reject, cancel).
	UpdatedAt string
}

// ApplyTransition applies event to the current status and returns the result.
// This is a pure function: the caller passes the actor and the current time
// so the outcome is fully determined by its inputs. An event the table does
// not permit from the current status yields an InvalidTransitionError and a
// zero result.
func ApplyTransition(current Status, event Event, actorID string, now time.Time) (TransitionResult, error) {
	next, ok := Next(current, event)
	if !ok {
		return TransitionResult{}, &InvalidTransitionError{From: current, Event: event}
	}

	result := TransitionResult{NewStatus: next}

	switch event {
	case EventApprove:
		result.ApprovedBy = actorID
		result.UpdatedAt = now.UTC().Format(time.RFC3339)
	case EventReject, EventCancel:
		result.UpdatedAt = now.UTC().Format(time.RFC3339)
	}

	return result, nil
}
