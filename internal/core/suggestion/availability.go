package suggestion

// IsAvailable reports whether an employee is free for the requested window:
// available iff their conflicts sequence is empty. Conflicts are surfaced to
// the caller as-is; no automatic substitution happens here.
func IsAvailable(emp EmployeeCheck) bool {
	return len(emp.Conflicts) == 0
}

// Available filters the candidates down to conflict-free employees,
// preserving input order.
func Available(employees []EmployeeCheck) []EmployeeCheck {
	var out []EmployeeCheck
	for _, emp := range employees {
		if IsAvailable(emp) {
			out = append(out, emp)
		}
	}
	return out
}
