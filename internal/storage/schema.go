package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			tier TEXT NOT NULL DEFAULT 'bronze',
			relationship_points INTEGER NOT NULL DEFAULT 0,
			last_contact DATETIME NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			next_meeting DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS missions (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			client_name TEXT NOT NULL,
			client_tier TEXT NOT NULL,
			type TEXT NOT NULL,
			priority TEXT NOT NULL,
			description TEXT NOT NULL,
			due_date DATETIME NOT NULL,
			xp_reward INTEGER NOT NULL DEFAULT 0,
			relationship_points INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);`,
		// Single row keyed by session.
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 1,
			xp INTEGER NOT NULL DEFAULT 0,
			xp_to_next_level INTEGER NOT NULL DEFAULT 1000,
			xp_progress INTEGER NOT NULL DEFAULT 0,
			completed_missions INTEGER NOT NULL DEFAULT 0,
			total_missions INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			relationship_points INTEGER NOT NULL DEFAULT 0,
			next_mission_due DATETIME
		);`,
		// Completed missions are gone from missions; this keeps what they paid out.
		`CREATE TABLE IF NOT EXISTS mission_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mission_id TEXT NOT NULL,
			client_id TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL,
			relationship_points INTEGER NOT NULL,
			level_after INTEGER NOT NULL,
			level_up INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_client_id ON missions(client_id);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_due_date ON missions(due_date);`,
		`CREATE INDEX IF NOT EXISTS idx_mission_completions_completed_at ON mission_completions(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
