package storage

import "time"

// MissionCompletion is one row of the completion log.
type MissionCompletion struct {
	ID                 int64
	MissionID          string
	ClientID           string
	CompletedAt        time.Time
	XPAwarded          int
	RelationshipPoints int
	LevelAfter         int
	LevelUp            bool
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
