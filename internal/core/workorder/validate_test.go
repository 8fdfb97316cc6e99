package workorder

import (
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		SiteID:       "SITE-001",
		EquipmentUID: "EQ-100",
		JobType:      "PREVENTIVE",
		PlannedStart: "2026-02-15T08:00:00Z",
		PlannedEnd:   "2026-02-15T10:00:00Z",
		CreatedBy:    "EMP-09",
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string // empty means valid
	}{
		{name: "valid draft", mutate: func(d *Draft) {}},
		{name: "valid without planned window", mutate: func(d *Draft) {
			d.PlannedStart = ""
			d.PlannedEnd = ""
		}},
		{name: "missing site", mutate: func(d *Draft) { d.SiteID = "" }, wantField: "site_id"},
		{name: "missing equipment", mutate: func(d *Draft) { d.EquipmentUID = "" }, wantField: "equipment_uid"},
		{name: "missing job type", mutate: func(d *Draft) { d.JobType = "" }, wantField: "job_type"},
		{name: "missing creator", mutate: func(d *Draft) { d.CreatedBy = "" }, wantField: "created_by"},
		{name: "end before start", mutate: func(d *Draft) {
			d.PlannedStart = "2026-02-15T10:00:00Z"
			d.PlannedEnd = "2026-02-15T08:00:00Z"
		}, wantField: "planned_end"},
		{name: "end equals start", mutate: func(d *Draft) {
			d.PlannedEnd = d.PlannedStart
		}, wantField: "planned_end"},
		{name: "unparseable start", mutate: func(d *Draft) {
			d.PlannedStart = "2026-02-15"
		}, wantField: "planned_start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateDraft(draft)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateDraft() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateDraft() error = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}
