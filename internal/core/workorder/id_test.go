package workorder

import "testing"

func TestGenerateWorkOrderID(t *testing.T) {
	tests := []struct {
		currentMax int
		want       string
	}{
		{currentMax: 0, want: "WO-001"},
		{currentMax: 9, want: "WO-010"},
		{currentMax: 99, want: "WO-100"},
		{currentMax: 999, want: "WO-1000"},
	}

	for _, tt := range tests {
		if got := GenerateWorkOrderID(tt.currentMax); got != tt.want {
			t.Errorf("GenerateWorkOrderID(%d) = %q, want %q", tt.currentMax, got, tt.want)
		}
	}
}

func TestParseWorkOrderNumber(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{id: "WO-001", want: 1},
		{id: "WO-042", want: 42},
		{id: "WO-1000", want: 1000},
		{id: "MISSION-001", want: -1},
		{id: "WO-abc", want: -1},
		{id: "", want: -1},
	}

	for _, tt := range tests {
		if got := ParseWorkOrderNumber(tt.id); got != tt.want {
			t.Errorf("ParseWorkOrderNumber(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}
