package workorder

// Role represents the asserted role of the caller. Roles arrive as request
// metadata and are passed explicitly into every guard - never read from
// shared process state.
type Role string

const (
	// RoleAdmin is the elevated role: it may approve/reject and its
	// creations are self-approved.
	RoleAdmin Role = "admin"
	// RoleUser is the standard operator role.
	RoleUser Role = "user"
)

// GuardContext provides the caller identity needed for guard evaluation.
type GuardContext struct {
	Role    Role
	ActorID string
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Err returns the guard result as a PermissionError if not allowed, nil otherwise.
func (r GuardResult) Err() error {
	if r.Allowed {
		return nil
	}
	return &PermissionError{Reason: r.Reason}
}

// CanInvoke evaluates whether the caller may invoke the given transition event.
// Rule: events outside the known set are never invocable; approve and reject
// require the elevated role; every other event is open to the caller's role
// (admission beyond approval is not gated here).
func CanInvoke(ctx GuardContext, event Event) GuardResult {
	if !ValidEvent(event) {
		return GuardResult{
			Allowed: false,
			Reason:  "unknown event " + string(event),
		}
	}
	if (event == EventApprove || event == EventReject) && ctx.Role != RoleAdmin {
		return GuardResult{
			Allowed: false,
			Reason:  "role " + string(ctx.Role) + " cannot " + string(event) + " - admin role required (actor: " + ctx.ActorID + ")",
		}
	}
	return GuardResult{Allowed: true}
}

// InitialStatus returns the status a newly created work order is admitted at.
// Rule: an explicit pre-submission save lands in DRAFT regardless of role;
// otherwise an elevated creator's work order is self-approved at creation and
// everyone else's waits in PENDING_APPROVAL.
func InitialStatus(role Role, asDraft bool) Status {
	if asDraft {
		return StatusDraft
	}
	if role == RoleAdmin {
		return StatusApproved
	}
	return StatusPendingApproval
}

// SelfApproved reports whether creation under the given role stamps
// approved_by at creation time (the elevated-role short circuit).
func SelfApproved(role Role, asDraft bool) bool {
	return InitialStatus(role, asDraft) == StatusApproved
}
