package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crmquest/internal/engine"
)

const MainProgressKey = "main_user"

type ProgressRepo struct {
	db DBTX
}

func NewProgressRepo(db DBTX) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Get(ctx context.Context, key string) (*engine.UserProgress, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT level, xp, xp_to_next_level, xp_progress, completed_missions, total_missions,
			streak, relationship_points, next_mission_due
		FROM progress
		WHERE key = ?
	`, key)

	var (
		p       engine.UserProgress
		nextDue sql.NullTime
	)
	if err := row.Scan(&p.Level, &p.XP, &p.XPToNextLevel, &p.XPProgress, &p.CompletedMissions, &p.TotalMissions, &p.Streak, &p.RelationshipPoints, &nextDue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("progress get: %w", err)
	}
	if nextDue.Valid {
		t := nextDue.Time
		p.NextMissionDue = &t
	}
	return &p, nil
}

// GetOrCreateMain returns the session progress, creating a level 1 record
// on first use.
func (r *ProgressRepo) GetOrCreateMain(ctx context.Context) (*engine.UserProgress, error) {
	p, err := r.Get(ctx, MainProgressKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if err := r.Save(ctx, MainProgressKey, engine.NewUserProgress()); err != nil {
		return nil, err
	}
	return r.Get(ctx, MainProgressKey)
}

func (r *ProgressRepo) Save(ctx context.Context, key string, p engine.UserProgress) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (
			key, level, xp, xp_to_next_level, xp_progress, completed_missions, total_missions,
			streak, relationship_points, next_mission_due
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			level = excluded.level,
			xp = excluded.xp,
			xp_to_next_level = excluded.xp_to_next_level,
			xp_progress = excluded.xp_progress,
			completed_missions = excluded.completed_missions,
			total_missions = excluded.total_missions,
			streak = excluded.streak,
			relationship_points = excluded.relationship_points,
			next_mission_due = excluded.next_mission_due
	`, key, p.Level, p.XP, p.XPToNextLevel, p.XPProgress, p.CompletedMissions, p.TotalMissions, p.Streak, p.RelationshipPoints, nullTime(p.NextMissionDue))
	if err != nil {
		return fmt.Errorf("progress save: %w", err)
	}
	return nil
}
