// Package workorder contains the pure business logic for the work order
// lifecycle. This is part of the Functional Core - no I/O, only pure functions.
package workorder

// Status represents the possible states of a work order.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusScheduled       Status = "SCHEDULED"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusDone            Status = "DONE"
	StatusRejected        Status = "REJECTED"
)

// AllStatuses lists every lifecycle state in lifecycle order.
var AllStatuses = []Status{
	StatusDraft,
	StatusPendingApproval,
	StatusApproved,
	StatusScheduled,
	StatusInProgress,
	StatusDone,
	StatusRejected,
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(s Status) bool {
	return s == StatusDone || s == StatusRejected
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s Status) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}
