package domain

import (
	"testing"
)

func TestParseVehicleLabel(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{label: "VEH1", want: 1},
		{label: " VEH12 ", want: 12},
		{label: "VEH", wantErr: true},
		{label: "CAR1", wantErr: true},
		{label: "VEHx", wantErr: true},
		{label: "VEH-3", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseVehicleLabel(tt.label)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVehicleLabel(%q) expected error, got %d", tt.label, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVehicleLabel(%q) unexpected error: %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVehicleLabel(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}

	if VehicleLabel(7) != "VEH7" {
		t.Errorf("VehicleLabel(7) = %q, want VEH7", VehicleLabel(7))
	}
}

func TestValidationResultConsistency(t *testing.T) {
	empty := NewValidationResult(nil)
	if !empty.Feasible() {
		t.Fatalf("empty result should be feasible")
	}
	if len(empty.Errors()) != 0 {
		t.Fatalf("empty result errors = %v", empty.Errors())
	}

	errs := []string{"a", "b"}
	res := NewValidationResult(errs)
	errs[0] = "mutated"

	if res.Feasible() {
		t.Fatalf("result with errors should be infeasible")
	}
	got := res.Errors()
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("errors = %v, want [a b]", got)
	}

	got[1] = "changed"
	if res.Errors()[1] != "b" {
		t.Fatalf("Errors must return a copy")
	}
}
