package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crmquest/internal/engine"
)

type ClientRepo struct {
	db DBTX
}

func NewClientRepo(db DBTX) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `id, name, tier, relationship_points, last_contact, email, phone, industry, next_meeting`

func (r *ClientRepo) Upsert(ctx context.Context, c engine.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tier = excluded.tier,
			relationship_points = excluded.relationship_points,
			last_contact = excluded.last_contact,
			email = excluded.email,
			phone = excluded.phone,
			industry = excluded.industry,
			next_meeting = excluded.next_meeting
	`, c.ID, c.Name, string(c.Tier), c.RelationshipPoints, c.LastContact.UTC(), c.Email, c.Phone, c.Industry, nullTime(c.NextMeeting))
	if err != nil {
		return fmt.Errorf("client upsert: %w", err)
	}
	return nil
}

func (r *ClientRepo) Get(ctx context.Context, id string) (*engine.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("client get: %w", err)
	}
	return c, nil
}

// ListAll returns clients in insertion order.
func (r *ClientRepo) ListAll(ctx context.Context) ([]engine.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("client list: %w", err)
	}
	defer rows.Close()

	var out []engine.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("client scan: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("client rows: %w", err)
	}
	return out, nil
}

func (r *ClientRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients`); err != nil {
		return fmt.Errorf("client delete all: %w", err)
	}
	return nil
}

func scanClient(row scanner) (*engine.Client, error) {
	var (
		c           engine.Client
		tier        string
		nextMeeting sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Name, &tier, &c.RelationshipPoints, &c.LastContact, &c.Email, &c.Phone, &c.Industry, &nextMeeting); err != nil {
		return nil, err
	}
	c.Tier = engine.Tier(tier)
	if nextMeeting.Valid {
		t := nextMeeting.Time
		c.NextMeeting = &t
	}
	return &c, nil
}
