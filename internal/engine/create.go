package engine

import (
	"strings"
	"time"
)

// NewMissionInput is the user-supplied part of a mission. ClientName and
// ClientTier are taken from the client, XPReward is scaled by its tier.
type NewMissionInput struct {
	ID                 string
	Type               MissionType
	Priority           Priority
	Description        string
	DueDate            time.Time
	BaseXP             int
	RelationshipPoints int
}

type NewClientInput struct {
	ID                 string
	Name               string
	Tier               Tier
	RelationshipPoints int
	Email              string
	Phone              string
	Industry           string
	NextMeeting        *time.Time
}

func normalizeText(field, s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ValidationError{Field: field, Reason: "is required"}
	}
	return t, nil
}

// BuildMission validates in and returns the mission for client, created at now.
func BuildMission(in NewMissionInput, client Client, now time.Time) (Mission, error) {
	if strings.TrimSpace(in.ID) == "" {
		return Mission{}, ValidationError{Field: "id", Reason: "is required"}
	}
	desc, err := normalizeText("description", in.Description)
	if err != nil {
		return Mission{}, err
	}
	if !in.Type.IsValid() {
		return Mission{}, ValidationError{Field: "type", Reason: string(in.Type) + " is not a mission type"}
	}
	prio := in.Priority
	if !prio.IsValid() {
		prio = PriorityMedium
	}
	if in.BaseXP < 0 {
		return Mission{}, ValidationError{Field: "xp", Reason: "must not be negative"}
	}
	if in.RelationshipPoints < 0 {
		return Mission{}, ValidationError{Field: "relationship points", Reason: "must not be negative"}
	}
	if in.DueDate.IsZero() {
		return Mission{}, ValidationError{Field: "due date", Reason: "is required"}
	}

	return Mission{
		ID:                 in.ID,
		ClientID:           client.ID,
		ClientName:         client.Name,
		ClientTier:         client.Tier,
		Type:               in.Type,
		Priority:           prio,
		Description:        desc,
		DueDate:            in.DueDate,
		XPReward:           ScaledReward(in.BaseXP, client.Tier),
		RelationshipPoints: in.RelationshipPoints,
		CreatedAt:          now,
	}, nil
}

// BuildClient validates in. A missing tier is derived from the relationship
// points.
func BuildClient(in NewClientInput, now time.Time) (Client, error) {
	if strings.TrimSpace(in.ID) == "" {
		return Client{}, ValidationError{Field: "id", Reason: "is required"}
	}
	name, err := normalizeText("name", in.Name)
	if err != nil {
		return Client{}, err
	}
	if in.RelationshipPoints < 0 {
		return Client{}, ValidationError{Field: "relationship points", Reason: "must not be negative"}
	}
	tier := in.Tier
	if !tier.IsValid() {
		tier = TierForPoints(in.RelationshipPoints)
	}
	return Client{
		ID:                 in.ID,
		Name:               name,
		Tier:               tier,
		RelationshipPoints: in.RelationshipPoints,
		LastContact:        now,
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		Industry:           strings.TrimSpace(in.Industry),
		NextMeeting:        in.NextMeeting,
	}, nil
}
