package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crmquest/internal/engine"
)

type MissionRepo struct {
	db DBTX
}

func NewMissionRepo(db DBTX) *MissionRepo {
	return &MissionRepo{db: db}
}

const missionColumns = `id, client_id, client_name, client_tier, type, priority, description, due_date, xp_reward, relationship_points, created_at`

func (r *MissionRepo) Insert(ctx context.Context, m engine.Mission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO missions (`+missionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.ClientID, m.ClientName, string(m.ClientTier), string(m.Type), string(m.Priority), m.Description, m.DueDate.UTC(), m.XPReward, m.RelationshipPoints, m.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("mission insert: %w", err)
	}
	return nil
}

func (r *MissionRepo) Get(ctx context.Context, id string) (*engine.Mission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+missionColumns+` FROM missions WHERE id = ?`, id)
	m, err := scanMission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mission get: %w", err)
	}
	return m, nil
}

// ListActive returns every mission not yet completed, in insertion order.
func (r *MissionRepo) ListActive(ctx context.Context) ([]engine.Mission, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+missionColumns+` FROM missions ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("mission list: %w", err)
	}
	defer rows.Close()

	var out []engine.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("mission scan: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mission rows: %w", err)
	}
	return out, nil
}

// Delete removes a mission. It reports whether a row was removed.
func (r *MissionRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM missions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("mission delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mission delete rows: %w", err)
	}
	return n > 0, nil
}

func (r *MissionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM missions`); err != nil {
		return fmt.Errorf("mission delete all: %w", err)
	}
	return nil
}

func scanMission(row scanner) (*engine.Mission, error) {
	var (
		m               engine.Mission
		tier, typ, prio string
	)
	if err := row.Scan(&m.ID, &m.ClientID, &m.ClientName, &tier, &typ, &prio, &m.Description, &m.DueDate, &m.XPReward, &m.RelationshipPoints, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.ClientTier = engine.Tier(tier)
	m.Type = engine.MissionType(typ)
	m.Priority = engine.Priority(prio)
	return &m, nil
}
