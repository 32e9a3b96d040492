package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: index notification lookups, which are always by user
	// and ordered newest-first.
	`CREATE INDEX IF NOT EXISTS idx_notifications_user
	     ON notifications(user_id, created_at DESC)`,
	// Migration 2: index the organization matching query used for
	// report fanout.
	`CREATE INDEX IF NOT EXISTS idx_users_role_city
	     ON users(role, city)`,
	`CREATE INDEX IF NOT EXISTS idx_users_role_state
	     ON users(role, state)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
