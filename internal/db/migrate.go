package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs in full on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per user per calendar date. Saves replace the row wholesale
	// (upsert on the primary key), they never increment it.
	`CREATE TABLE IF NOT EXISTS daily_results (
		user_id          TEXT NOT NULL,
		date             TEXT NOT NULL,
		total_work_time  INTEGER NOT NULL DEFAULT 0 CHECK(total_work_time >= 0),
		total_break_time INTEGER NOT NULL DEFAULT 0 CHECK(total_break_time >= 0),
		updated_at       TEXT NOT NULL,
		PRIMARY KEY (user_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_results_date ON daily_results(date)`,
}
