package postgresql

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		email         TEXT PRIMARY KEY,
		name          TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL,
		schedule      TEXT NOT NULL DEFAULT 'general',
		password_hash TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		email     TEXT NOT NULL,
		date      TEXT NOT NULL,
		clock_in  TIMESTAMPTZ,
		clock_out TIMESTAMPTZ,
		breaks    JSONB NOT NULL DEFAULT '[]',
		status    TEXT NOT NULL DEFAULT 'A',
		PRIMARY KEY (email, date)
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard_entries (
		email             TEXT PRIMARY KEY,
		name              TEXT NOT NULL DEFAULT '',
		total_points      INT NOT NULL DEFAULT 0,
		attendance_points INT NOT NULL DEFAULT 0,
		small_tasks       INT NOT NULL DEFAULT 0,
		regular_tasks     INT NOT NULL DEFAULT 0,
		big_tasks         INT NOT NULL DEFAULT 0
	)`,
}

// Migrate creates the record tables when they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
