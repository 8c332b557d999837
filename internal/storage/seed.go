package storage

import (
	"context"
	"database/sql"
	"time"

	"crmquest/internal/engine"
)

const day = 24 * time.Hour

// SampleClients returns the demo roster with dates relative to now.
func SampleClients(now time.Time) []engine.Client {
	at := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}
	return []engine.Client{
		{ID: "client1", Name: "Acme Corporation", Tier: engine.TierGold, RelationshipPoints: 720, LastContact: now.Add(-3 * day), Email: "contact@acme.com", Phone: "(555) 123-4567", Industry: "Technology", NextMeeting: at(2 * day)},
		{ID: "client2", Name: "Globex Industries", Tier: engine.TierSilver, RelationshipPoints: 340, LastContact: now.Add(-7 * day), Email: "info@globex.com", Phone: "(555) 987-6543", Industry: "Manufacturing"},
		{ID: "client3", Name: "Cyberdyne Systems", Tier: engine.TierPlatinum, RelationshipPoints: 1250, LastContact: now.Add(-1 * day), Email: "contact@cyberdyne.com", Phone: "(555) 321-7890", Industry: "Defense", NextMeeting: at(5 * day)},
		{ID: "client4", Name: "Stark Industries", Tier: engine.TierBronze, RelationshipPoints: 80, LastContact: now.Add(-14 * day), Email: "info@stark.com", Phone: "(555) 456-7890", Industry: "Energy"},
	}
}

// SampleMissions returns the demo missions with dates relative to now.
func SampleMissions(now time.Time) []engine.Mission {
	return []engine.Mission{
		{ID: "1", ClientID: "client1", ClientName: "Acme Corporation", ClientTier: engine.TierGold, Type: engine.MissionFollowUp, Priority: engine.PriorityHigh, Description: "Follow up on the new project proposal", DueDate: now.Add(day), XPReward: 100, RelationshipPoints: 20, CreatedAt: now.Add(-2 * day)},
		{ID: "2", ClientID: "client2", ClientName: "Globex Industries", ClientTier: engine.TierSilver, Type: engine.MissionMeeting, Priority: engine.PriorityMedium, Description: "Quarterly review meeting", DueDate: now.Add(3 * day), XPReward: 150, RelationshipPoints: 30, CreatedAt: now.Add(-5 * day)},
		{ID: "3", ClientID: "client3", ClientName: "Cyberdyne Systems", ClientTier: engine.TierPlatinum, Type: engine.MissionCall, Priority: engine.PriorityLow, Description: "Discuss potential service upgrade options", DueDate: now.Add(7 * day), XPReward: 75, RelationshipPoints: 15, CreatedAt: now.Add(-1 * day)},
	}
}

// SampleProgress returns the demo progress record.
func SampleProgress(now time.Time) engine.UserProgress {
	next := now.Add(day)
	return engine.UserProgress{
		Level:              3,
		XP:                 1250,
		XPToNextLevel:      500,
		XPProgress:         250,
		CompletedMissions:  24,
		TotalMissions:      36,
		Streak:             5,
		RelationshipPoints: 450,
		NextMissionDue:     &next,
	}
}

// Seed loads the sample data. With reset, existing clients and missions are
// removed and the progress record is replaced; otherwise rows are upserted
// next to what is there.
func Seed(ctx context.Context, db *sql.DB, now time.Time, reset bool) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		clients := NewClientRepo(tx)
		missions := NewMissionRepo(tx)
		progress := NewProgressRepo(tx)

		if reset {
			if err := missions.DeleteAll(ctx); err != nil {
				return err
			}
			if err := clients.DeleteAll(ctx); err != nil {
				return err
			}
		}
		for _, c := range SampleClients(now) {
			if err := clients.Upsert(ctx, c); err != nil {
				return err
			}
		}
		for _, m := range SampleMissions(now) {
			existing, err := missions.Get(ctx, m.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := missions.Insert(ctx, m); err != nil {
				return err
			}
		}

		current, err := progress.Get(ctx, MainProgressKey)
		if err != nil {
			return err
		}
		if current == nil || reset {
			return progress.Save(ctx, MainProgressKey, SampleProgress(now))
		}
		return nil
	})
}
