package mood

import (
	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
)

// Config holds configuration for the mood service
type Config struct {
	// Repository dependencies
	GuessRepo   guessRepo.Repository
	PuzzleRepo  puzzleRepo.Repository
	PlayerRepo  playerRepo.Repository
	HistoryRepo moodHistoryRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// GetStreakInput contains parameters for deriving a streak
type GetStreakInput struct {
	// PlayerID is the player whose streak to derive
	PlayerID string
}

// GetStreakOutput contains the derived streak
type GetStreakOutput struct {
	// Streak is the count of consecutive solved weeks
	Streak int
}

// UpdateAfterSolveInput contains parameters for a post-solve update
type UpdateAfterSolveInput struct {
	// PlayerID is the player who just solved
	PlayerID string
}

// UpdateAfterSolveOutput contains the result of a post-solve update
type UpdateAfterSolveOutput struct {
	// TierChanged indicates the mood tier moved
	TierChanged bool

	// OldTier is the tier before the update
	OldTier int

	// NewTier is the tier after the update
	NewTier int

	// Streak is the freshly derived streak
	Streak int

	// TotalSolves is the freshly derived distinct solve count
	TotalSolves int

	// BestStreak is the player's best streak after the update
	BestStreak int
}

// HandleStreakBreakInput contains parameters for a streak-break demotion
type HandleStreakBreakInput struct {
	// PlayerID is the player who missed a week
	PlayerID string
}

// HandleStreakBreakOutput contains the result of a streak-break demotion
type HandleStreakBreakOutput struct {
	// TierChanged indicates the mood tier was demoted
	TierChanged bool

	// OldTier is the tier before the demotion
	OldTier int

	// NewTier is the tier after the demotion
	NewTier int
}
