package engine

import "math"

// XPPerLevel is the coefficient of the level threshold: a level L is left
// after L*XPPerLevel XP have been earned within it.
const XPPerLevel = 1000

// XPThresholdForLevel returns the XP needed to leave the given level.
// Levels below 1 are treated as level 1.
func XPThresholdForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// TierConfig carries the per-tier reward settings.
type TierConfig struct {
	Tier                  Tier
	Label                 string
	MinRelationshipPoints int
	XPMultiplier          float64
}

var tierConfigs = map[Tier]TierConfig{
	TierBronze:   {Tier: TierBronze, Label: "Bronze", MinRelationshipPoints: 0, XPMultiplier: 1.0},
	TierSilver:   {Tier: TierSilver, Label: "Silver", MinRelationshipPoints: 100, XPMultiplier: 1.2},
	TierGold:     {Tier: TierGold, Label: "Gold", MinRelationshipPoints: 500, XPMultiplier: 1.5},
	TierPlatinum: {Tier: TierPlatinum, Label: "Platinum", MinRelationshipPoints: 1000, XPMultiplier: 2.0},
}

// ConfigForTier returns the settings of t. Unknown tiers get bronze settings.
func ConfigForTier(t Tier) TierConfig {
	if c, ok := tierConfigs[t]; ok {
		return c
	}
	return tierConfigs[TierBronze]
}

// TierForPoints returns the highest tier whose point minimum is met.
func TierForPoints(points int) Tier {
	best := TierBronze
	for _, t := range Tiers {
		if points >= tierConfigs[t].MinRelationshipPoints {
			best = t
		}
	}
	return best
}

// ScaledReward applies the tier multiplier to a base XP reward.
// The value is frozen on the mission when it is created.
func ScaledReward(base int, t Tier) int {
	if base < 0 {
		base = 0
	}
	xp := float64(base) * ConfigForTier(t).XPMultiplier
	return int(math.Round(xp))
}

// CompletionPercent returns completed/total missions as a rounded percentage.
func CompletionPercent(p UserProgress) int {
	if p.TotalMissions <= 0 {
		return 0
	}
	return int(math.Round(float64(p.CompletedMissions) / float64(p.TotalMissions) * 100))
}

// XPProgressPercent returns XPProgress against the current level curve,
// capped at 100.
func XPProgressPercent(p UserProgress) int {
	pct := int(math.Round(float64(p.XPProgress) / float64(XPThresholdForLevel(p.Level)) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
