package workorder

import "time"

// Draft holds the fields of a work order candidate prior to admission.
// Timestamps are RFC3339 strings; empty means absent.
type Draft struct {
	SiteID        string
	EquipmentUID  string
	JobType       string
	PlannedStart  string
	PlannedEnd    string
	RequiredCerts []string
	EmployeeID    string
	CreatedBy     string
}

// ValidateDraft checks a candidate for admission. Rules:
//   - site_id and equipment_uid are required and non-empty
//   - job_type is required
//   - created_by is required
//   - planned_start/planned_end, when both present, must parse as RFC3339
//     and satisfy planned_start < planned_end
//
// A failed validation is reported before any state change.
func ValidateDraft(d Draft) error {
	if d.SiteID == "" {
		return &ValidationError{Field: "site_id", Reason: "is required"}
	}
	if d.EquipmentUID == "" {
		return &ValidationError{Field: "equipment_uid", Reason: "is required"}
	}
	if d.JobType == "" {
		return &ValidationError{Field: "job_type", Reason: "is required"}
	}
	if d.CreatedBy == "" {
		return &ValidationError{Field: "created_by", Reason: "is required"}
	}

	if d.PlannedStart != "" && d.PlannedEnd != "" {
		start, err := time.Parse(time.RFC3339, d.PlannedStart)
		if err != nil {
			return &ValidationError{Field: "planned_start", Reason: "is not a valid RFC3339 timestamp"}
		}
		end, err := time.Parse(time.RFC3339, d.PlannedEnd)
		if err != nil {
			return &ValidationError{Field: "planned_end", Reason: "is not a valid RFC3339 timestamp"}
		}
		if !start.Before(end) {
			return &ValidationError{Field: "planned_end", Reason: "must be after planned_start"}
		}
	}

	return nil
}
