package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strayaid/strayaid/internal/model"
)

// CreateAdoptionInterest records a user's interest in adopting a reported
// animal. Repeated calls for the same pair insert new rows: interests are
// append-only and not deduplicated.
func CreateAdoptionInterest(ctx context.Context, db *sql.DB, reportID, userID int64) (*model.AdoptionInterest, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO adoptions (report_id, user_id) VALUES (?, ?)`,
		reportID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating adoption interest: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting adoption interest id: %w", err)
	}

	a := &model.AdoptionInterest{}
	err = db.QueryRowContext(ctx,
		`SELECT id, report_id, user_id, status, created_at
		 FROM adoptions WHERE id = ?`, id,
	).Scan(&a.ID, &a.ReportID, &a.UserID, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting adoption interest: %w", err)
	}
	return a, nil
}

// ListAdoptionInterestsByReport returns all interests registered for a
// report, oldest first.
func ListAdoptionInterestsByReport(ctx context.Context, db *sql.DB, reportID int64) ([]model.AdoptionInterest, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, report_id, user_id, status, created_at
		 FROM adoptions WHERE report_id = ? ORDER BY id`,
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing adoption interests: %w", err)
	}
	defer rows.Close()

	var interests []model.AdoptionInterest
	for rows.Next() {
		var a model.AdoptionInterest
		if err := rows.Scan(&a.ID, &a.ReportID, &a.UserID, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning adoption interest: %w", err)
		}
		interests = append(interests, a)
	}
	return interests, rows.Err()
}
