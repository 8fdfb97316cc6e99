package suggestion

// AssembleInput provides everything the assembler needs: the query's
// site/equipment context, the checks bundle, and the upstream job-type hint.
type AssembleInput struct {
	SiteID       string
	EquipmentUID string
	Checks       Checks

	// JobTypeHint is the query backend's own classification of the request
	// (e.g. PREVENTIVE, REPAIR). Anything other than PREVENTIVE counts as an
	// explicit signal that this is not preventive work, and the assembler
	// declines rather than guess.
	JobTypeHint string
}

// Assemble merges schedule, employee-availability, and inventory results
// with the query context into a single work order candidate. Returns nil
// when preconditions are not met: a query with no schedule signal must not
// fabricate a work order.
//
// Pure function of its inputs; same inputs always yield the same candidate.
func Assemble(in AssembleInput) *SuggestedWorkOrder {
	if in.SiteID == "" || in.EquipmentUID == "" {
		return nil
	}

	schedule := in.Checks.Schedule
	if schedule == nil || schedule.EquipmentUID == "" || schedule.EquipmentUID != in.EquipmentUID {
		return nil
	}

	jobType, ok := defaultJobType(schedule, in.JobTypeHint)
	if !ok {
		return nil
	}

	candidate := &SuggestedWorkOrder{
		SiteID:        in.SiteID,
		EquipmentUID:  in.EquipmentUID,
		JobType:       jobType,
		RequiredCerts: dedupeCerts(schedule.RequiredCerts),
		EmployeeID:    firstAvailableEmployee(in.Checks.Employees),
	}

	if start, end, ok := canonicalWindow(schedule); ok {
		candidate.PlannedStart = start
		candidate.PlannedEnd = end
	}

	return candidate
}
