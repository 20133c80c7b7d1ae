package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are inserted by the writer rather than defaulted so the schema
// works unchanged on both sqlite and postgres.
const schema = `
-- Recorded location samples
CREATE TABLE IF NOT EXISTS location_point (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    latitude REAL NOT NULL,
    longitude REAL NOT NULL,
    speed REAL NOT NULL DEFAULT 0,
    age_range TEXT,
    gender TEXT,
    commute_mode TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_location_point_user_created ON location_point(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_location_point_created ON location_point(created_at);

-- Display names, keyed by the same user_id the samples carry
CREATE TABLE IF NOT EXISTS profile (
    user_id TEXT PRIMARY KEY,
    username TEXT
);
`
