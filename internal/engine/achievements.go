package engine

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements a progress record has earned.
type AchievementChecker struct {
	progress UserProgress
}

func NewAchievementChecker(progress UserProgress) *AchievementChecker {
	return &AchievementChecker{progress: progress}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("first_steps", "First Steps", "Reach level 1", "🌱", 1),
		c.levelAchievement("rising_star", "Rising Star", "Reach level 3", "🌿", 3),
		c.levelAchievement("account_lead", "Account Lead", "Reach level 5", "🌳", 5),
		c.levelAchievement("rainmaker", "Rainmaker", "Reach level 10", "⭐", 10),

		// Mission milestones
		c.missionAchievement("first_mission", "First Mission", "Complete 1 mission", "✓", 1),
		c.missionAchievement("reliable", "Reliable", "Complete 10 missions", "📋", 10),
		c.missionAchievement("closer", "Closer", "Complete 50 missions", "🏅", 50),
		c.missionAchievement("legend", "Legend", "Complete 100 missions", "🏆", 100),

		// Relationship milestones
		c.relationshipAchievement("trusted", "Trusted Partner", "Earn 500 relationship points", "🤝", 500),
		c.relationshipAchievement("inner_circle", "Inner Circle", "Earn 1,000 relationship points", "💎", 1000),
		c.relationshipAchievement("networker", "Master Networker", "Earn 5,000 relationship points", "🌐", 5000),

		c.streakAchievement("on_fire", "On Fire", "Keep a 7 day streak", "🔥", 7),
	}
}

// CountEarned returns how many of achievements have been earned.
func CountEarned(achievements []Achievement) int {
	count := 0
	for _, a := range achievements {
		if a.Earned {
			count++
		}
	}
	return count
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.progress.Level >= level}
}

func (c *AchievementChecker) missionAchievement(id, name, desc, icon string, count int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.progress.CompletedMissions >= count}
}

func (c *AchievementChecker) relationshipAchievement(id, name, desc, icon string, points int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.progress.RelationshipPoints >= points}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.progress.Streak >= days}
}

// Achievements is shorthand for NewAchievementChecker(p).GetAchievements().
func Achievements(p UserProgress) []Achievement {
	return NewAchievementChecker(p).GetAchievements()
}
