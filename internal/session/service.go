// Package session keeps the dashboard state between calls: it loads clients,
// missions and progress from storage, runs the engines over them and writes
// the results back.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"crmquest/internal/engine"
	"crmquest/internal/storage"
)

type Service struct {
	db          *sql.DB
	log         *zap.Logger
	locale      language.Tag
	now         func() time.Time
	newID       func() string
	clients     *storage.ClientRepo
	missions    *storage.MissionRepo
	progress    *storage.ProgressRepo
	completions *storage.CompletionRepo
}

type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithLocale sets the locale used to order names.
func WithLocale(tag language.Tag) Option {
	return func(s *Service) { s.locale = tag }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the uuid generator used for new clients and missions.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:          db,
		log:         zap.NewNop(),
		locale:      engine.DefaultLocale,
		now:         time.Now,
		newID:       uuid.NewString,
		clients:     storage.NewClientRepo(db),
		missions:    storage.NewMissionRepo(db),
		progress:    storage.NewProgressRepo(db),
		completions: storage.NewCompletionRepo(db),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) MissionRepo() *storage.MissionRepo       { return s.missions }
func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }

// Now returns the service clock.
func (s *Service) Now() time.Time { return s.now() }

// Roster returns the filtered and ordered client list.
func (s *Service) Roster(ctx context.Context, q engine.ClientQuery) ([]engine.Client, error) {
	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if q.Locale == language.Und {
		q.Locale = s.locale
	}
	return engine.RosterView(clients, q), nil
}

// Missions returns the filtered and ordered active missions.
func (s *Service) Missions(ctx context.Context, q engine.MissionQuery) ([]engine.Mission, error) {
	missions, err := s.missions.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if q.Locale == language.Und {
		q.Locale = s.locale
	}
	return engine.MissionView(missions, q), nil
}

// Progress returns the session progress record.
func (s *Service) Progress(ctx context.Context) (engine.UserProgress, error) {
	p, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return engine.UserProgress{}, err
	}
	return *p, nil
}

// Complete completes a mission. An unknown id is not an error: the result has
// Found=false and nothing is written.
func (s *Service) Complete(ctx context.Context, missionID string) (*engine.CompleteResult, error) {
	res, err := storage.InTx(ctx, s.db, func(tx *sql.Tx) (engine.CompleteResult, error) {
		missions := storage.NewMissionRepo(tx)
		progress := storage.NewProgressRepo(tx)

		active, err := missions.ListActive(ctx)
		if err != nil {
			return engine.CompleteResult{}, err
		}
		p, err := progress.GetOrCreateMain(ctx)
		if err != nil {
			return engine.CompleteResult{}, err
		}

		res := engine.Complete(missionID, active, *p)
		if !res.Found {
			return res, nil
		}

		if _, err := missions.Delete(ctx, missionID); err != nil {
			return res, err
		}
		res.Progress.NextMissionDue = engine.NextMissionDue(res.Missions)
		if err := progress.Save(ctx, storage.MainProgressKey, res.Progress); err != nil {
			return res, err
		}
		_, err = storage.NewCompletionRepo(tx).Insert(ctx, storage.MissionCompletion{
			MissionID:          res.Mission.ID,
			ClientID:           res.Mission.ClientID,
			CompletedAt:        s.now(),
			XPAwarded:          res.Mission.XPReward,
			RelationshipPoints: res.Mission.RelationshipPoints,
			LevelAfter:         res.Progress.Level,
			LevelUp:            res.LevelUp,
		})
		return res, err
	})
	if err != nil {
		return nil, fmt.Errorf("complete mission %s: %w", missionID, err)
	}

	if !res.Found {
		s.log.Debug("complete: no active mission", zap.String("mission_id", missionID))
		return &res, nil
	}
	s.log.Info("mission completed",
		zap.String("mission_id", missionID),
		zap.String("client", res.Mission.ClientName),
		zap.Int("xp", res.Mission.XPReward),
		zap.Int("level", res.Progress.Level))
	if res.LevelUp {
		s.log.Info("level up", zap.Int("level", res.Progress.Level), zap.Int("xp_to_next_level", res.Progress.XPToNextLevel))
	}
	return &res, nil
}

// AddMissionInput is a new mission for an existing client.
type AddMissionInput struct {
	ClientID           string
	Type               engine.MissionType
	Priority           engine.Priority
	Description        string
	DueDate            time.Time
	BaseXP             int
	RelationshipPoints int
}

// AddMission creates a mission. Its XP reward is BaseXP scaled by the client tier.
func (s *Service) AddMission(ctx context.Context, in AddMissionInput) (*engine.Mission, error) {
	client, err := s.clients.Get(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("add mission for %s: %w", in.ClientID, engine.ErrClientNotFound)
	}

	m, err := engine.BuildMission(engine.NewMissionInput{
		ID:                 s.newID(),
		Type:               in.Type,
		Priority:           in.Priority,
		Description:        in.Description,
		DueDate:            in.DueDate,
		BaseXP:             in.BaseXP,
		RelationshipPoints: in.RelationshipPoints,
	}, *client, s.now())
	if err != nil {
		return nil, err
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewMissionRepo(tx).Insert(ctx, m); err != nil {
			return err
		}
		progress := storage.NewProgressRepo(tx)
		p, err := progress.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		p.TotalMissions++
		if p.NextMissionDue == nil || m.DueDate.Before(*p.NextMissionDue) {
			due := m.DueDate
			p.NextMissionDue = &due
		}
		return progress.Save(ctx, storage.MainProgressKey, *p)
	})
	if err != nil {
		return nil, fmt.Errorf("add mission: %w", err)
	}

	s.log.Info("mission added", zap.String("mission_id", m.ID), zap.String("client", m.ClientName), zap.Int("xp", m.XPReward))
	return &m, nil
}

// AddClient creates a client.
func (s *Service) AddClient(ctx context.Context, in engine.NewClientInput) (*engine.Client, error) {
	if in.ID == "" {
		in.ID = s.newID()
	}
	c, err := engine.BuildClient(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.clients.Upsert(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("client added", zap.String("client_id", c.ID), zap.String("tier", string(c.Tier)))
	return &c, nil
}

// Seed loads the sample data set.
func (s *Service) Seed(ctx context.Context, reset bool) error {
	if err := storage.Seed(ctx, s.db, s.now(), reset); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	s.log.Info("sample data loaded", zap.Bool("reset", reset))
	return nil
}

// Achievements returns the badges of the current progress.
func (s *Service) Achievements(ctx context.Context) ([]engine.Achievement, error) {
	p, err := s.Progress(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Achievements(p), nil
}

// CompletedToday counts completions since midnight of the service clock's day.
func (s *Service) CompletedToday(ctx context.Context) (int, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.completions.CountSince(ctx, midnight)
}
