// Package suggestion contains the pure business logic for deriving work
// order suggestions from query checks. This is part of the Functional Core -
// no I/O, only pure functions.
package suggestion

// ScheduleCheck is the schedule side-channel of a query: the next known
// maintenance slot for a piece of equipment.
type ScheduleCheck struct {
	EquipmentUID   string   `json:"equipment_uid"`
	NextDate       string   `json:"next_date,omitempty"` // YYYY-MM-DD
	RequiredCerts  []string `json:"required_certs,omitempty"`
	EstDurationMin int      `json:"est_duration_min,omitempty"`
}

// Conflict describes a booking that overlaps the requested window.
type Conflict struct {
	AssignmentID string `json:"assignment_id,omitempty"`
	WorkOrderID  string `json:"work_order_id,omitempty"`
	StartTS      string `json:"start_ts,omitempty"`
	EndTS        string `json:"end_ts,omitempty"`
}

// EmployeeCheck is one candidate employee with their conflicting bookings,
// in the order the query backend returned them.
type EmployeeCheck struct {
	EmployeeID string     `json:"employee_id"`
	Name       string     `json:"name"`
	Conflicts  []Conflict `json:"conflicts"`
}

// InventoryCheck is one inventory line for a queried part. ReorderLevel is
// nil when no threshold is configured for the part.
type InventoryCheck struct {
	PartID       string `json:"part_id"`
	PartName     string `json:"part_name,omitempty"`
	Qty          int    `json:"qty"`
	ReorderLevel *int   `json:"reorder_level,omitempty"`
}

// Checks is the read-only, query-scoped bundle of structured side-channel
// data returned alongside a conversational answer.
type Checks struct {
	Schedule  *ScheduleCheck   `json:"schedule,omitempty"`
	Employees []EmployeeCheck  `json:"employees,omitempty"`
	Inventory []InventoryCheck `json:"inventory,omitempty"`
}

// Evidence is one retrieval citation backing an answer. Purely informational.
type Evidence struct {
	Source  string   `json:"source"`
	Section string   `json:"section,omitempty"`
	Score   *float64 `json:"score,omitempty"` // in [0,1] when present
	Snippet string   `json:"snippet"`
}

// SuggestedWorkOrder is an ephemeral, unpersisted work order candidate.
// It is produced fresh per query and only ever consumed - accepted into a
// real work order or discarded.
type SuggestedWorkOrder struct {
	SiteID        string   `json:"site_id"`
	EquipmentUID  string   `json:"equipment_uid"`
	JobType       string   `json:"job_type"`
	PlannedStart  string   `json:"planned_start,omitempty"`
	PlannedEnd    string   `json:"planned_end,omitempty"`
	RequiredCerts []string `json:"required_certs,omitempty"`
	EmployeeID    string   `json:"employee_id,omitempty"`
}
