package engine

import "time"

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}

func (t Tier) IsValid() bool {
	return t.Rank() > 0
}

// Rank orders tiers bronze < silver < gold < platinum. Unknown tiers rank 0.
func (t Tier) Rank() int {
	switch t {
	case TierBronze:
		return 1
	case TierSilver:
		return 2
	case TierGold:
		return 3
	case TierPlatinum:
		return 4
	default:
		return 0
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Rank orders priorities low < medium < high. Unknown priorities rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

type MissionType string

const (
	MissionFollowUp    MissionType = "follow_up"
	MissionCheckIn     MissionType = "check_in"
	MissionMeeting     MissionType = "meeting"
	MissionEmail       MissionType = "email"
	MissionOpportunity MissionType = "opportunity"
	MissionCall        MissionType = "call"
	MissionTask        MissionType = "task"
)

var MissionTypes = []MissionType{
	MissionFollowUp,
	MissionCheckIn,
	MissionMeeting,
	MissionEmail,
	MissionOpportunity,
	MissionCall,
	MissionTask,
}

func (t MissionType) IsValid() bool {
	switch t {
	case MissionFollowUp, MissionCheckIn, MissionMeeting, MissionEmail,
		MissionOpportunity, MissionCall, MissionTask:
		return true
	default:
		return false
	}
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Flip returns the opposite direction. Anything that is not Descending is
// treated as Ascending.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Client is a customer record. The engines only reorder and filter clients,
// they never modify them.
type Client struct {
	ID                 string
	Name               string
	Tier               Tier
	RelationshipPoints int
	LastContact        time.Time
	Email              string
	Phone              string
	Industry           string
	NextMeeting        *time.Time
}

// Mission is a task tied to a client. ClientName and ClientTier are copied
// from the client when the mission is created.
type Mission struct {
	ID                 string
	ClientID           string
	ClientName         string
	ClientTier         Tier
	Type               MissionType
	Priority           Priority
	Description        string
	DueDate            time.Time
	XPReward           int
	RelationshipPoints int
	CreatedAt          time.Time
}

// UserProgress is the single progression record of a session. Only Complete
// produces a changed copy of it.
type UserProgress struct {
	Level              int
	XP                 int
	XPToNextLevel      int
	XPProgress         int
	CompletedMissions  int
	TotalMissions      int
	Streak             int
	RelationshipPoints int
	NextMissionDue     *time.Time
}

// NewUserProgress returns the starting record for a fresh session.
func NewUserProgress() UserProgress {
	return UserProgress{
		Level:         1,
		XPToNextLevel: XPThresholdForLevel(1),
	}
}
