package store

import (
	"context"
	"testing"

	"github.com/strayaid/strayaid/internal/db"
	"github.com/strayaid/strayaid/internal/model"
)

func TestCreateAdoptionInterest(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	reporter := newReporter(t, database)
	adopter, _ := CreateUser(ctx, database, "adopter@example.com", "h", "Adopter", model.RoleCitizen, "", "")
	report, _ := CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Dog", City: "Pune"})

	a, err := CreateAdoptionInterest(ctx, database, report.ID, adopter.ID)
	if err != nil {
		t.Fatalf("CreateAdoptionInterest: %v", err)
	}
	if a.Status != model.AdoptionStatusInterested {
		t.Errorf("expected status 'interested', got %q", a.Status)
	}

	// The report's status is untouched: adoption interest is a parallel
	// list, not a lifecycle transition.
	got, _ := GetReport(ctx, database, report.ID)
	if got.Status != model.StatusPending {
		t.Errorf("expected report to stay 'pending', got %q", got.Status)
	}
}

func TestDuplicateAdoptionInterestsAllowed(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	reporter := newReporter(t, database)
	adopter, _ := CreateUser(ctx, database, "adopter@example.com", "h", "Adopter", model.RoleCitizen, "", "")
	report, _ := CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Dog", City: "Pune"})

	for i := 0; i < 2; i++ {
		if _, err := CreateAdoptionInterest(ctx, database, report.ID, adopter.ID); err != nil {
			t.Fatalf("CreateAdoptionInterest %d: %v", i, err)
		}
	}

	interests, err := ListAdoptionInterestsByReport(ctx, database, report.ID)
	if err != nil {
		t.Fatalf("ListAdoptionInterestsByReport: %v", err)
	}
	if len(interests) != 2 {
		t.Errorf("expected 2 interest rows (no dedup), got %d", len(interests))
	}
}
