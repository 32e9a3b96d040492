package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strayaid/strayaid/internal/model"
)

// CreateReport inserts a new report with status 'pending'.
func CreateReport(ctx context.Context, db *sql.DB, r model.NewReport) (*model.Report, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO reports (reporter_id, animal_type, description, image_url,
		                      address, city, state, latitude, longitude)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ReporterID, r.AnimalType, r.Description, r.ImageURL,
		r.Address, r.City, r.State, r.Latitude, r.Longitude,
	)
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting report id: %w", err)
	}

	return GetReport(ctx, db, id)
}

// GetReport returns a report by ID, or nil if no such report exists.
func GetReport(ctx context.Context, db *sql.DB, id int64) (*model.Report, error) {
	r := &model.Report{}
	var description, imageURL, imageMime, address sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, reporter_id, animal_type, description, image_url, image_mime,
		        address, city, state, latitude, longitude, status, created_at
		 FROM reports WHERE id = ?`, id,
	).Scan(&r.ID, &r.ReporterID, &r.AnimalType, &description, &imageURL, &imageMime,
		&address, &r.City, &r.State, &r.Latitude, &r.Longitude, &r.Status, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}
	r.Description = description.String
	r.ImageURL = imageURL.String
	r.ImageMime = imageMime.String
	r.Address = address.String
	return r, nil
}

// ListReports returns reports joined with the reporter's name, newest
// first. City and state filters are AND-composed when both are given;
// empty filters match everything.
func ListReports(ctx context.Context, db *sql.DB, city, state string) ([]model.Report, error) {
	query := `SELECT r.id, r.reporter_id, r.animal_type, r.description, r.image_url,
	                 r.image_mime, r.address, r.city, r.state, r.latitude, r.longitude,
	                 r.status, r.created_at, u.name
	          FROM reports r JOIN users u ON r.reporter_id = u.id`
	var args []any
	var conds []string
	if city != "" {
		conds = append(conds, "r.city = ?")
		args = append(args, city)
	}
	if state != "" {
		conds = append(conds, "r.state = ?")
		args = append(args, state)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	// created_at has second resolution, so break ties on id to keep
	// insertion order.
	query += " ORDER BY r.created_at DESC, r.id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var r model.Report
		var description, imageURL, imageMime, address sql.NullString
		if err := rows.Scan(&r.ID, &r.ReporterID, &r.AnimalType, &description, &imageURL,
			&imageMime, &address, &r.City, &r.State, &r.Latitude, &r.Longitude,
			&r.Status, &r.CreatedAt, &r.ReporterName); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		r.Description = description.String
		r.ImageURL = imageURL.String
		r.ImageMime = imageMime.String
		r.Address = address.String
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// UpdateReportStatus overwrites a report's status. Legality of the
// transition is the caller's responsibility (the API lifecycle gate).
func UpdateReportStatus(ctx context.Context, db *sql.DB, id int64, status string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE reports SET status = ? WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("updating report status: %w", err)
	}
	return nil
}

// SetReportImage stores a processed photo for a report.
func SetReportImage(ctx context.Context, db *sql.DB, id int64, data []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE reports SET image = ?, image_mime = ? WHERE id = ?`,
		data, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting report image: %w", err)
	}
	return nil
}

// GetReportImage returns a report's photo and MIME type. Data is nil when
// no photo has been uploaded.
func GetReportImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var data []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM reports WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting report image: %w", err)
	}
	return data, mime.String, nil
}
