package suggestion

import "time"

// JobTypePreventive is the only job type the assembler ever chooses on its
// own. Richer classification (repair vs inspection) belongs to the query
// backend and arrives as a hint.
const JobTypePreventive = "PREVENTIVE"

// canonicalStartHour is the canonical time-of-day a planned window opens at
// when the schedule only carries a date.
const canonicalStartHour = 8

// defaultJobType decides the job type for a candidate. Rule: PREVENTIVE when
// the schedule carries a next date or required certs and no explicit
// non-preventive signal was given; otherwise the assembler declines to guess.
func defaultJobType(schedule *ScheduleCheck, hint string) (string, bool) {
	if hint != "" && hint != JobTypePreventive {
		return "", false
	}
	if schedule == nil || (schedule.NextDate == "" && len(schedule.RequiredCerts) == 0) {
		return "", false
	}
	return JobTypePreventive, true
}

// firstAvailableEmployee picks the first conflict-free employee in input
// order. Returns empty when every candidate has conflicts - a conflicted
// employee is never assigned.
func firstAvailableEmployee(employees []EmployeeCheck) string {
	for _, emp := range employees {
		if IsAvailable(emp) {
			return emp.EmployeeID
		}
	}
	return ""
}

// canonicalWindow derives the planned window from the schedule: the next
// date at the canonical start of day, extended by the estimated duration.
// Both endpoints are emitted or neither is.
func canonicalWindow(schedule *ScheduleCheck) (start, end string, ok bool) {
	if schedule.NextDate == "" || schedule.EstDurationMin <= 0 {
		return "", "", false
	}
	day, err := time.Parse("2006-01-02", schedule.NextDate)
	if err != nil {
		return "", "", false
	}
	startTS := time.Date(day.Year(), day.Month(), day.Day(), canonicalStartHour, 0, 0, 0, time.UTC)
	endTS := startTS.Add(time.Duration(schedule.EstDurationMin) * time.Minute)
	return startTS.Format(time.RFC3339), endTS.Format(time.RFC3339), true
}

// dedupeCerts collapses duplicate certs, keeping first-seen order.
func dedupeCerts(certs []string) []string {
	if len(certs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(certs))
	out := make([]string, 0, len(certs))
	for _, c := range certs {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
