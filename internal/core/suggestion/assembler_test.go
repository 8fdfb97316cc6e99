package suggestion

import (
	"reflect"
	"testing"
)

func scheduleEQ100() *ScheduleCheck {
	return &ScheduleCheck{
		EquipmentUID:   "EQ-100",
		NextDate:       "2026-02-15",
		RequiredCerts:  []string{"HYDRAULICS", "LOCKOUT"},
		EstDurationMin: 120,
	}
}

func twoFreeEmployees() []EmployeeCheck {
	return []EmployeeCheck{
		{EmployeeID: "EMP-01", Name: "Avery Chen", Conflicts: nil},
		{EmployeeID: "EMP-02", Name: "Morgan Lee", Conflicts: nil},
	}
}

func TestAssembleFullCandidate(t *testing.T) {
	got := Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: scheduleEQ100(), Employees: twoFreeEmployees()},
	})

	want := &SuggestedWorkOrder{
		SiteID:        "SITE-001",
		EquipmentUID:  "EQ-100",
		JobType:       "PREVENTIVE",
		PlannedStart:  "2026-02-15T08:00:00Z",
		PlannedEnd:    "2026-02-15T10:00:00Z",
		RequiredCerts: []string{"HYDRAULICS", "LOCKOUT"},
		EmployeeID:    "EMP-01",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Assemble() = %+v, want %+v", got, want)
	}
}

func TestAssembleSkipsConflictedEmployee(t *testing.T) {
	employees := twoFreeEmployees()
	employees[0].Conflicts = []Conflict{{WorkOrderID: "WO-007", StartTS: "2026-02-15T08:00:00Z", EndTS: "2026-02-15T12:00:00Z"}}

	got := Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: scheduleEQ100(), Employees: employees},
	})

	if got == nil {
		t.Fatal("Assemble() = nil, want candidate")
	}
	if got.EmployeeID != "EMP-02" {
		t.Errorf("EmployeeID = %q, want EMP-02 (first conflict-free in input order)", got.EmployeeID)
	}
}

func TestAssembleOmitsEmployeeWhenAllConflicted(t *testing.T) {
	conflict := []Conflict{{WorkOrderID: "WO-007"}}
	employees := twoFreeEmployees()
	employees[0].Conflicts = conflict
	employees[1].Conflicts = conflict

	got := Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: scheduleEQ100(), Employees: employees},
	})

	if got == nil {
		t.Fatal("Assemble() = nil, want candidate")
	}
	if got.EmployeeID != "" {
		t.Errorf("EmployeeID = %q, want empty (never assign a conflicted employee)", got.EmployeeID)
	}
}

func TestAssembleNoSchedule(t *testing.T) {
	tests := []struct {
		name   string
		checks Checks
	}{
		{name: "nil schedule", checks: Checks{Employees: twoFreeEmployees()}},
		{name: "empty equipment on schedule", checks: Checks{Schedule: &ScheduleCheck{NextDate: "2026-02-15"}}},
		{name: "schedule for different equipment", checks: Checks{Schedule: &ScheduleCheck{EquipmentUID: "EQ-999", NextDate: "2026-02-15"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(AssembleInput{SiteID: "SITE-001", EquipmentUID: "EQ-100", Checks: tt.checks})
			if got != nil {
				t.Errorf("Assemble() = %+v, want nil (no suggestion without schedule signal)", got)
			}
		})
	}
}

func TestAssembleMissingContext(t *testing.T) {
	checks := Checks{Schedule: scheduleEQ100()}

	if got := Assemble(AssembleInput{EquipmentUID: "EQ-100", Checks: checks}); got != nil {
		t.Errorf("Assemble() without site = %+v, want nil", got)
	}
	if got := Assemble(AssembleInput{SiteID: "SITE-001", Checks: checks}); got != nil {
		t.Errorf("Assemble() without equipment = %+v, want nil", got)
	}
}

func TestAssembleDeclinesOnNonPreventiveHint(t *testing.T) {
	got := Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: scheduleEQ100()},
		JobTypeHint:  "REPAIR",
	})
	if got != nil {
		t.Errorf("Assemble() with REPAIR hint = %+v, want nil (classification is upstream's job)", got)
	}

	got = Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: scheduleEQ100()},
		JobTypeHint:  "PREVENTIVE",
	})
	if got == nil {
		t.Error("Assemble() with PREVENTIVE hint = nil, want candidate")
	}
}

func TestAssembleDeclinesOnBareSchedule(t *testing.T) {
	// A schedule with neither next_date nor required certs carries no
	// preventive signal.
	got := Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: &ScheduleCheck{EquipmentUID: "EQ-100"}},
	})
	if got != nil {
		t.Errorf("Assemble() = %+v, want nil", got)
	}
}

func TestAssemblePlannedWindowBothOrNeither(t *testing.T) {
	tests := []struct {
		name     string
		schedule *ScheduleCheck
	}{
		{name: "no duration", schedule: &ScheduleCheck{EquipmentUID: "EQ-100", NextDate: "2026-02-15", RequiredCerts: []string{"LOCKOUT"}}},
		{name: "no next date", schedule: &ScheduleCheck{EquipmentUID: "EQ-100", RequiredCerts: []string{"LOCKOUT"}, EstDurationMin: 60}},
		{name: "unparseable next date", schedule: &ScheduleCheck{EquipmentUID: "EQ-100", NextDate: "Feb 15", RequiredCerts: []string{"LOCKOUT"}, EstDurationMin: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(AssembleInput{
				SiteID:       "SITE-001",
				EquipmentUID: "EQ-100",
				Checks:       Checks{Schedule: tt.schedule},
			})
			if got == nil {
				t.Fatal("Assemble() = nil, want candidate")
			}
			if got.PlannedStart != "" || got.PlannedEnd != "" {
				t.Errorf("planned window = (%q, %q), want both empty", got.PlannedStart, got.PlannedEnd)
			}
		})
	}
}

func TestAssembleCollapsesDuplicateCerts(t *testing.T) {
	schedule := scheduleEQ100()
	schedule.RequiredCerts = []string{"LOCKOUT", "HYDRAULICS", "LOCKOUT", "", "HYDRAULICS"}

	got := Assemble(AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: schedule},
	})

	if got == nil {
		t.Fatal("Assemble() = nil, want candidate")
	}
	want := []string{"LOCKOUT", "HYDRAULICS"}
	if !reflect.DeepEqual(got.RequiredCerts, want) {
		t.Errorf("RequiredCerts = %v, want %v", got.RequiredCerts, want)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	in := AssembleInput{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		Checks:       Checks{Schedule: scheduleEQ100(), Employees: twoFreeEmployees()},
	}

	first := Assemble(in)
	second := Assemble(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Assemble() not deterministic: %+v vs %+v", first, second)
	}
}
