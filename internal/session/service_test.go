package session

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crmquest/internal/engine"
	"crmquest/internal/storage"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n := 0
	svc := NewService(db,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return "gen-" + string(rune('0'+n))
		}),
	)
	require.NoError(t, svc.Seed(ctx, false))
	return svc
}

func TestRosterAndMissionsViews(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	clients, err := svc.Roster(ctx, engine.ClientQuery{Sort: engine.SortByTier, Direction: engine.Descending})
	require.NoError(t, err)
	require.Equal(t, "Cyberdyne Systems", clients[0].Name)
	require.Equal(t, "Stark Industries", clients[len(clients)-1].Name)

	missions, err := svc.Missions(ctx, engine.MissionQuery{Sort: engine.SortByXPReward, Direction: engine.Descending})
	require.NoError(t, err)
	require.Len(t, missions, 3)
	require.Equal(t, "2", missions[0].ID)
}

func TestCompletePersistsResult(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Complete(ctx, "1")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.False(t, res.LevelUp)
	require.Equal(t, "Mission completed! +100 XP", res.Message)

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	require.Equal(t, 1350, p.XP)
	require.Equal(t, 350, p.XPProgress)
	require.Equal(t, 25, p.CompletedMissions)
	require.Equal(t, 470, p.RelationshipPoints)

	m, err := svc.MissionRepo().Get(ctx, "1")
	require.NoError(t, err)
	require.Nil(t, m)

	log, err := svc.CompletionRepo().ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, log, 1)
	require.Equal(t, "1", log[0].MissionID)
	require.Equal(t, 100, log[0].XPAwarded)
}

func TestCompleteLevelsUpOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// 250 + 100 + 150 = 500 reaches the seeded 500 threshold.
	_, err := svc.Complete(ctx, "1")
	require.NoError(t, err)
	res, err := svc.Complete(ctx, "2")
	require.NoError(t, err)
	require.True(t, res.LevelUp)
	require.True(t, strings.HasPrefix(res.Message, "🎉"))

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, p.Level)
	require.Equal(t, 0, p.XPProgress)
	require.Equal(t, 4000, p.XPToNextLevel)
}

func TestCompleteUnknownMissionChangesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.Progress(ctx)
	require.NoError(t, err)

	res, err := svc.Complete(ctx, "does-not-exist")
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Empty(t, res.Message)

	after, err := svc.Progress(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)

	missions, err := svc.Missions(ctx, engine.MissionQuery{})
	require.NoError(t, err)
	require.Len(t, missions, 3)
}

func TestCompleteTwiceIsNoopTheSecondTime(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Complete(ctx, "3")
	require.NoError(t, err)
	res, err := svc.Complete(ctx, "3")
	require.NoError(t, err)
	require.False(t, res.Found)

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	require.Equal(t, 25, p.CompletedMissions)
}

func TestAddMissionScalesRewardAndCountsTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.AddMission(ctx, AddMissionInput{
		ClientID:           "client1",
		Type:               engine.MissionOpportunity,
		Priority:           engine.PriorityHigh,
		Description:        "Pitch the analytics add-on",
		DueDate:            fixedNow.Add(48 * time.Hour),
		BaseXP:             100,
		RelationshipPoints: 25,
	})
	require.NoError(t, err)
	require.Equal(t, "gen-1", m.ID)
	require.Equal(t, 150, m.XPReward)
	require.Equal(t, "Acme Corporation", m.ClientName)

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	require.Equal(t, 37, p.TotalMissions)

	stored, err := svc.MissionRepo().Get(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, stored.CreatedAt.Equal(fixedNow))
}

func TestAddMissionUnknownClient(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddMission(context.Background(), AddMissionInput{ClientID: "nobody", Type: engine.MissionCall, Description: "x", DueDate: fixedNow})
	require.ErrorIs(t, err, engine.ErrClientNotFound)
}

func TestAddClientDerivesTier(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.AddClient(ctx, engine.NewClientInput{Name: "Umbrella Corp", RelationshipPoints: 150, Industry: "Pharma"})
	require.NoError(t, err)
	require.Equal(t, engine.TierSilver, c.Tier)

	clients, err := svc.Roster(ctx, engine.ClientQuery{Search: "pharma"})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, c.ID, clients[0].ID)
}

func TestAchievementsFromSeededProgress(t *testing.T) {
	svc := newTestService(t)
	achievements, err := svc.Achievements(context.Background())
	require.NoError(t, err)

	require.Len(t, achievements, 12)
	require.Equal(t, 4, engine.CountEarned(achievements))
}

func TestCompletedTodayCountsFromMidnight(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	n, err := svc.CompletedToday(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = svc.CompletionRepo().Insert(ctx, storage.MissionCompletion{MissionID: "old", ClientID: "client1", CompletedAt: fixedNow.Add(-13 * time.Hour), XPAwarded: 10, LevelAfter: 3})
	require.NoError(t, err)
	_, err = svc.Complete(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Complete(ctx, "3")
	require.NoError(t, err)

	n, err = svc.CompletedToday(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
