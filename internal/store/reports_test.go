package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/strayaid/strayaid/internal/db"
	"github.com/strayaid/strayaid/internal/model"
)

func newReporter(t *testing.T, database *sql.DB) *model.User {
	t.Helper()
	u, err := CreateUser(context.Background(), database, "reporter@example.com", "h", "Reporter", model.RoleCitizen, "Pune", "Maharashtra")
	if err != nil {
		t.Fatalf("creating reporter: %v", err)
	}
	return u
}

func TestCreateAndGetReport(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	lat, lng := 18.52, 73.85
	report, err := CreateReport(ctx, database, model.NewReport{
		ReporterID:  reporter.ID,
		AnimalType:  "Dog",
		Description: "Injured near the market",
		City:        "Pune",
		State:       "Maharashtra",
		Latitude:    &lat,
		Longitude:   &lng,
	})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if report.Status != model.StatusPending {
		t.Errorf("expected status 'pending', got %q", report.Status)
	}
	if report.Latitude == nil || *report.Latitude != lat {
		t.Errorf("expected latitude %v, got %v", lat, report.Latitude)
	}

	got, err := GetReport(ctx, database, report.ID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.AnimalType != "Dog" || got.ReporterID != reporter.ID {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestGetReportMissing(t *testing.T) {
	database := db.NewTestDB(t)

	report, err := GetReport(context.Background(), database, 42)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if report != nil {
		t.Errorf("expected nil for missing report, got %+v", report)
	}
}

func TestListReportsFilters(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Dog", City: "Pune", State: "Maharashtra"})
	CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Cat", City: "Pune", State: "Goa"})
	CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Cow", City: "Nagpur", State: "Maharashtra"})

	all, err := ListReports(ctx, database, "", "")
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(all))
	}

	// City-only filter.
	pune, _ := ListReports(ctx, database, "Pune", "")
	if len(pune) != 2 {
		t.Errorf("expected 2 Pune reports, got %d", len(pune))
	}

	// Both filters compose with AND, unlike the fanout's OR.
	both, _ := ListReports(ctx, database, "Pune", "Maharashtra")
	if len(both) != 1 {
		t.Fatalf("expected 1 report for city AND state, got %d", len(both))
	}
	if both[0].AnimalType != "Dog" {
		t.Errorf("expected the Dog report, got %q", both[0].AnimalType)
	}
	if both[0].ReporterName != "Reporter" {
		t.Errorf("expected joined reporter name, got %q", both[0].ReporterName)
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	first, _ := CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Dog", City: "Pune"})
	second, _ := CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Cat", City: "Pune"})

	reports, err := ListReports(ctx, database, "", "")
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if reports[0].ID != second.ID || reports[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got ids %d, %d", reports[0].ID, reports[1].ID)
	}
}

func TestUpdateReportStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	report, _ := CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Dog", City: "Pune"})
	if err := UpdateReportStatus(ctx, database, report.ID, model.StatusRescued); err != nil {
		t.Fatalf("UpdateReportStatus: %v", err)
	}

	got, _ := GetReport(ctx, database, report.ID)
	if got.Status != model.StatusRescued {
		t.Errorf("expected status 'rescued', got %q", got.Status)
	}
}

func TestReportImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	report, _ := CreateReport(ctx, database, model.NewReport{ReporterID: reporter.ID, AnimalType: "Dog", City: "Pune"})

	data, mime, err := GetReportImage(ctx, database, report.ID)
	if err != nil {
		t.Fatalf("GetReportImage: %v", err)
	}
	if data != nil {
		t.Errorf("expected no image before upload, got %d bytes", len(data))
	}

	if err := SetReportImage(ctx, database, report.ID, []byte("fake image data"), "image/jpeg"); err != nil {
		t.Fatalf("SetReportImage: %v", err)
	}

	data, mime, err = GetReportImage(ctx, database, report.ID)
	if err != nil {
		t.Fatalf("GetReportImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("unexpected image data: %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}
