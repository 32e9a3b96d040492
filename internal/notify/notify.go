// Package notify is the notification core: for each domain event it
// resolves the set of recipients and the message, persists one
// notification row per recipient, and pushes the payload to any live
// sessions.
//
// Durability and liveness are deliberately asymmetric: a failed insert
// aborts the triggering request, while a live push is fire-and-forget.
// Each recipient's insert happens before their push, so a client that
// sees a push will also find the row on its next fetch.
package notify

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/strayaid/strayaid/internal/live"
	"github.com/strayaid/strayaid/internal/metrics"
	"github.com/strayaid/strayaid/internal/model"
	"github.com/strayaid/strayaid/internal/store"
)

// Service resolves and delivers notifications for domain events.
type Service struct {
	DB  *sql.DB
	Hub *live.Hub
}

// fanout is a resolved event: who to tell and what to say. Recipients
// are a set keyed by user ID (the resolver queries return each user at
// most once, even when both city and state match).
type fanout struct {
	event      string
	recipients []int64
	message    string
}

// ReportCreated notifies every organization whose city or state matches
// the new report. Zero matching organizations is a valid outcome.
func (s *Service) ReportCreated(ctx context.Context, r *model.Report) error {
	orgs, err := store.ListOrganizationsByArea(ctx, s.DB, r.City, r.State)
	if err != nil {
		return fmt.Errorf("resolving organizations: %w", err)
	}

	recipients := make([]int64, 0, len(orgs))
	for _, org := range orgs {
		recipients = append(recipients, org.ID)
	}

	return s.deliver(ctx, fanout{
		event:      "new_report",
		recipients: recipients,
		message:    fmt.Sprintf("New rescue request: %s in %s", r.AnimalType, r.City),
	})
}

// ReportStatusChanged notifies the report's original reporter. A missing
// report is a silent no-op, not an error.
func (s *Service) ReportStatusChanged(ctx context.Context, reportID int64, status string) error {
	r, err := store.GetReport(ctx, s.DB, reportID)
	if err != nil {
		return fmt.Errorf("resolving report: %w", err)
	}
	if r == nil {
		return nil
	}

	return s.deliver(ctx, fanout{
		event:      "status_change",
		recipients: []int64{r.ReporterID},
		message:    fmt.Sprintf("Your report for %s is now %s", r.AnimalType, status),
	})
}

// AdoptionInterestAdded notifies the report's reporter that someone wants
// to adopt the animal. A missing report is a silent no-op.
func (s *Service) AdoptionInterestAdded(ctx context.Context, reportID int64) error {
	r, err := store.GetReport(ctx, s.DB, reportID)
	if err != nil {
		return fmt.Errorf("resolving report: %w", err)
	}
	if r == nil {
		return nil
	}

	return s.deliver(ctx, fanout{
		event:      "adoption_interest",
		recipients: []int64{r.ReporterID},
		message:    fmt.Sprintf("Someone is interested in adopting the %s you reported!", r.AnimalType),
	})
}

// deliver persists one notification per recipient, pushing to live
// sessions after each durable write. A store failure aborts delivery;
// push failures do not exist (the hub drops silently).
func (s *Service) deliver(ctx context.Context, f fanout) error {
	for _, userID := range f.recipients {
		if _, err := store.CreateNotification(ctx, s.DB, userID, f.message); err != nil {
			return fmt.Errorf("writing notification: %w", err)
		}
		metrics.NotificationsCreated.WithLabelValues(f.event).Inc()
		s.Hub.Push(userID, live.Notification{Message: f.message})
	}
	if len(f.recipients) > 0 {
		slog.Info("notifications delivered", "event", f.event, "recipients", len(f.recipients))
	}
	return nil
}
