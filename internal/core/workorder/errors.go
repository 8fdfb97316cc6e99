package workorder

import "fmt"

// The error taxonomy below keeps failure classes distinguishable at the
// caller so a UI can offer different remediation for each. None of these
// errors leaves stored state modified.

// ValidationError indicates a malformed or incomplete work order candidate.
// It is raised before any state change and never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid work order: %s %s", e.Field, e.Reason)
}

// PermissionError indicates a role-gated transition attempted by an
// ineligible role.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return "permission denied: " + e.Reason
}

// InvalidTransitionError indicates a transition requested from a state that
// does not permit it, including any attempt on a terminal state.
type InvalidTransitionError struct {
	From  Status
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s work order in status %s", e.Event, e.From)
}

// ConflictError indicates a concurrent transition race was lost. The caller
// should re-fetch current state and retry at most once.
type ConflictError struct {
	WorkOrderID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("work order %s was modified concurrently", e.WorkOrderID)
}

// UpstreamError indicates a collaborator (query backend, persistence) failed
// or timed out. The request fails as a single terminal failure with no
// partial state applied.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
