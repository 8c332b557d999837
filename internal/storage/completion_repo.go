package storage

import (
	"context"
	"fmt"
	"time"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c MissionCompletion) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO mission_completions (mission_id, client_id, completed_at, xp_awarded, relationship_points, level_after, level_up)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.MissionID, c.ClientID, c.CompletedAt.UTC(), c.XPAwarded, c.RelationshipPoints, c.LevelAfter, boolToInt(c.LevelUp))
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

func (r *CompletionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM mission_completions
		WHERE completed_at >= ?
	`, since.UTC())
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

// ListRecent returns the latest completions, newest first.
func (r *CompletionRepo) ListRecent(ctx context.Context, limit int) ([]MissionCompletion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mission_id, client_id, completed_at, xp_awarded, relationship_points, level_after, level_up
		FROM mission_completions
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []MissionCompletion
	for rows.Next() {
		var (
			c       MissionCompletion
			levelUp int
		)
		if err := rows.Scan(&c.ID, &c.MissionID, &c.ClientID, &c.CompletedAt, &c.XPAwarded, &c.RelationshipPoints, &c.LevelAfter, &levelUp); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		c.LevelUp = levelUp != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}
