package models

import (
	"time"
)

// Mood tier bounds
const (
	// MinMoodTier is the lowest, most dismissive tier
	MinMoodTier = 0

	// MaxMoodTier is the highest, worshipful tier
	MaxMoodTier = 6
)

// MoodReason represents why a mood tier transition was recorded
type MoodReason string

const (
	// MoodReasonSolve indicates a tier change (or demotion) on a normal solve
	MoodReasonSolve MoodReason = "SOLVE"

	// MoodReasonTierUp indicates the tier increased on a solve
	MoodReasonTierUp MoodReason = "TIER_UP"

	// MoodReasonStreakBreak indicates a demotion after a week with no solve
	MoodReasonStreakBreak MoodReason = "STREAK_BREAK"
)

// MoodHistoryEntry is an append-only audit record of a tier transition.
// The guess log remains the source of truth; these entries are the trail.
type MoodHistoryEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// PlayerID is the player whose tier changed
	PlayerID string

	// OldTier is the tier before the transition
	OldTier int

	// NewTier is the tier after the transition
	NewTier int

	// Reason is why the transition happened
	Reason MoodReason

	// Streak is the player's streak at transition time
	Streak int

	// TotalSolves is the player's distinct solve count at transition time
	TotalSolves int

	// CreatedAt is when the transition was recorded
	CreatedAt time.Time
}
