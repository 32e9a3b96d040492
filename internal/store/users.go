package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/strayaid/strayaid/internal/model"
)

// IsUniqueViolation reports whether err is a SQLite unique-constraint
// failure. The modernc driver exposes no typed error for this, so match
// on the stable message prefix.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateUser creates a new user. Returns an error satisfying
// IsUniqueViolation if the email is already registered.
func CreateUser(ctx context.Context, db *sql.DB, email, passwordHash, name, role, city, state string) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, name, role, city, state)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		email, passwordHash, name, role, city, state,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID, or nil if no such user exists.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, city, state, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.City, &u.State, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email, or nil if no such user exists.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, city, state, created_at
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.City, &u.State, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// ListOrganizationsByArea returns all organization users whose city or
// state matches. The OR is inclusive: a city-only match or a state-only
// match both qualify. This is the notification fanout query and is
// deliberately looser than the AND-composed report list filter.
func ListOrganizationsByArea(ctx context.Context, db *sql.DB, city, state string) ([]model.User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, email, password_hash, name, role, city, state, created_at
		 FROM users WHERE role = ? AND (city = ? OR state = ?) ORDER BY id`,
		model.RoleOrganization, city, state,
	)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.City, &u.State, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
