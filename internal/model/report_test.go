package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInTreatment, StatusRescued, StatusAdopted} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING", "in_treatment"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusInTreatment, true},
		{StatusPending, StatusRescued, true},
		{StatusPending, StatusAdopted, true},
		{StatusInTreatment, StatusRescued, true},
		{StatusRescued, StatusAdopted, true},
		{StatusRescued, StatusPending, false},
		{StatusAdopted, StatusRescued, false},
		{StatusPending, StatusPending, false},
		{StatusPending, "garbage", false},
		{"garbage", StatusRescued, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleCitizen) || !ValidRole(RoleOrganization) {
		t.Error("expected known roles to be valid")
	}
	if ValidRole("admin") || ValidRole("") {
		t.Error("expected unknown roles to be invalid")
	}
}
