package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the itinerary schema. Statements are idempotent so the
// full list runs on every open; there is no schema version table.
//
// day_moods deliberately has no foreign key to days: moods are a parallel
// per-day slot that tolerates entries for days not currently saved, the
// same way the setup slot tolerates being absent.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trip_setup (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		destination TEXT NOT NULL,
		trip_type TEXT NOT NULL CHECK (trip_type IN ('beaches', 'mountains', 'cities')),
		number_of_days INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS days (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		day_id TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		time_start TEXT NOT NULL DEFAULT '',
		time_end TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		type TEXT NOT NULL DEFAULT 'activity'
			CHECK (type IN ('food', 'travel', 'explore', 'accommodation', 'activity'))
	)`,

	`CREATE TABLE IF NOT EXISTS checklist_items (
		id TEXT NOT NULL,
		activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		text TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (activity_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS day_moods (
		day_id TEXT PRIMARY KEY,
		emoji TEXT NOT NULL,
		label TEXT NOT NULL,
		gradient TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS undo_slot (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		day_id TEXT NOT NULL,
		activity TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(day_id, position)`,

	`CREATE INDEX IF NOT EXISTS idx_checklist_activity ON checklist_items(activity_id, position)`,
}
