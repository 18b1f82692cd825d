package models

import (
	"time"
)

// AchievementCategory groups related achievements
type AchievementCategory string

const (
	// CategoryStreak covers consecutive-week streak milestones
	CategoryStreak AchievementCategory = "streak"

	// CategorySolve covers total-solve milestones
	CategorySolve AchievementCategory = "solve"

	// CategorySpeed covers solve-latency and first-place achievements
	CategorySpeed AchievementCategory = "speed"

	// CategoryEfficiency covers low-guess-count achievements
	CategoryEfficiency AchievementCategory = "efficiency"

	// CategoryComeback covers recovering a previously lost streak
	CategoryComeback AchievementCategory = "comeback"

	// CategorySpecial covers time-of-day and guess-count oddities
	CategorySpecial AchievementCategory = "special"
)

// Achievement is a static catalog entry. The catalog is loaded once and
// never mutated at runtime.
type Achievement struct {
	// Key is the stable unique identifier for the achievement
	Key string

	// Name is the display title
	Name string

	// Description explains how the achievement is earned
	Description string

	// Category groups the achievement
	Category AchievementCategory

	// Tier is a display label (bronze, silver, gold)
	Tier string

	// Secret hides the description until the achievement is unlocked
	Secret bool
}

// UnlockedAchievement records that a player earned an achievement.
// A given (player, achievement) pair is recorded at most once, ever.
type UnlockedAchievement struct {
	// PlayerID is the player who earned the achievement
	PlayerID string

	// AchievementKey references the catalog entry
	AchievementKey string

	// UnlockedAt is when the achievement was earned
	UnlockedAt time.Time
}

// AchievementProgress summarizes unlocked/total counts for one category
type AchievementProgress struct {
	// Category is the achievement category
	Category AchievementCategory

	// Unlocked is how many achievements in this category the player has
	Unlocked int

	// Total is how many achievements this category contains
	Total int
}
