package achievement

import (
	"time"

	"github.com/phrazzle/phrazzle/internal/models"
	achievementRepo "github.com/phrazzle/phrazzle/internal/repositories/achievement"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/mood"
)

// Config holds the dependencies for the achievement service
type Config struct {
	AchievementRepo achievementRepo.Repository
	GuessRepo       guessRepo.Repository
	PuzzleRepo      puzzleRepo.Repository
	HistoryRepo     moodHistoryRepo.Repository
	MoodService     mood.Service
}

// CheckAndAwardInput describes the solve that triggered the evaluation
type CheckAndAwardInput struct {
	// PlayerID is the player who just solved
	PlayerID string

	// PuzzleID is the puzzle that was solved
	PuzzleID string

	// GuessNumber is which guess was the correct one
	GuessNumber int

	// SolvedAt is when the correct guess was recorded
	SolvedAt time.Time
}

// CheckAndAwardOutput lists the achievements unlocked by one invocation
type CheckAndAwardOutput struct {
	// NewlyUnlocked is empty when no rule fired or every firing rule
	// was already unlocked
	NewlyUnlocked []*models.Achievement
}

type GetUnlockedInput struct {
	PlayerID string
}

type GetUnlockedOutput struct {
	// Unlocked pairs each record with its catalog entry
	Unlocked []*UnlockedDetail
}

// UnlockedDetail joins an unlock record to its catalog entry
type UnlockedDetail struct {
	Achievement *models.Achievement
	UnlockedAt  time.Time
}

type GetProgressInput struct {
	PlayerID string
}

type GetProgressOutput struct {
	// Progress holds one entry per category, in catalog order
	Progress []*models.AchievementProgress

	// Unlocked is the total unlocked count across categories
	Unlocked int

	// Total is the catalog size
	Total int
}
