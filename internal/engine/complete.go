package engine

import "fmt"

type CompleteResult struct {
	Missions []Mission
	Progress UserProgress
	Message  string

	// Found is false when the mission id was unknown. Missions and Progress
	// are then the inputs, unchanged.
	Found   bool
	LevelUp bool
	Mission Mission
}

// LevelUpMessage is the completion message shown when a level is gained.
func LevelUpMessage(level int) string {
	return fmt.Sprintf("🎉 Level Up! You're now level %d!", level)
}

// CompletedMessage is the completion message shown without a level-up.
func CompletedMessage(xp int) string {
	return fmt.Sprintf("Mission completed! +%d XP", xp)
}

// Complete removes the mission with the given id from missions and credits its
// rewards to progress. At most one level is gained per completion, checked
// against the threshold the progress had before the completion. An unknown id
// is a no-op.
func Complete(missionID string, missions []Mission, progress UserProgress) CompleteResult {
	idx := -1
	for i := range missions {
		if missions[i].ID == missionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CompleteResult{Missions: missions, Progress: progress}
	}

	m := missions[idx]
	remaining := make([]Mission, 0, len(missions)-1)
	remaining = append(remaining, missions[:idx]...)
	remaining = append(remaining, missions[idx+1:]...)

	next := progress
	next.XP += m.XPReward
	next.XPProgress += m.XPReward
	next.CompletedMissions++
	next.RelationshipPoints += m.RelationshipPoints

	levelUp := false
	if next.XPProgress >= progress.XPToNextLevel {
		next.Level++
		next.XPProgress -= progress.XPToNextLevel
		next.XPToNextLevel = XPThresholdForLevel(next.Level)
		levelUp = true
	}

	msg := CompletedMessage(m.XPReward)
	if levelUp {
		msg = LevelUpMessage(next.Level)
	}

	return CompleteResult{
		Missions: remaining,
		Progress: next,
		Message:  msg,
		Found:    true,
		LevelUp:  levelUp,
		Mission:  m,
	}
}
