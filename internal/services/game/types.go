package game

import (
	"github.com/phrazzle/phrazzle/internal/celebration"
	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/phrazzle/phrazzle/internal/oracle"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/achievement"
	"github.com/phrazzle/phrazzle/internal/services/mood"
	"github.com/phrazzle/phrazzle/internal/wordmatch"
)

// Config holds the dependencies for the game service
type Config struct {
	GuessRepo          guessRepo.Repository
	PuzzleRepo         puzzleRepo.Repository
	PlayerRepo         playerRepo.Repository
	MoodService        mood.Service
	AchievementService achievement.Service
	Matcher            *wordmatch.Matcher
	Oracle             oracle.Oracle
	Celebration        celebration.Provider
	Clock              clock.Clock
	UUIDGenerator      uuid.UUID
}

// SubmitGuessInput contains one guess against the active weekly puzzle
type SubmitGuessInput struct {
	// PlayerID is the submitting player
	PlayerID string

	// PlayerName is used when the player record is created on first
	// interaction
	PlayerName string

	// Text is the raw guess
	Text string
}

// SubmitGuessOutput is the unified result the transport layer renders
type SubmitGuessOutput struct {
	// IsCorrect is the final verdict
	IsCorrect bool

	// GuessNumber is this guess's sequence number for the player and
	// puzzle
	GuessNumber int

	// Explanation describes the verdict when one is available
	Explanation string

	// MissingWords is set when the word pre-filter rejected the guess
	MissingWords []string

	// CorrectedSpelling is set when the oracle accepted despite a typo
	CorrectedSpelling string

	// TierChanged indicates a mood tier transition occurred
	TierChanged bool

	// OldTier is the tier before this guess was processed
	OldTier int

	// NewTier is the tier after this guess was processed; unchanged on
	// a miss
	NewTier int

	// Streak is the player's streak including this solve
	Streak int

	// NewAchievements lists badges unlocked by this solve
	NewAchievements []*models.Achievement

	// CelebrationURL is the asset keyed by the new tier, correct
	// guesses only
	CelebrationURL string

	// CoinsAwarded is the hint coin grant for this solve
	CoinsAwarded int
}

// CheckAnswerInput contains a guess to validate against an answer
type CheckAnswerInput struct {
	// Answer is the correct phrase
	Answer string

	// Text is the raw guess
	Text string
}

// CheckAnswerOutput is the verdict from the validation pipeline alone
type CheckAnswerOutput struct {
	IsCorrect         bool
	Explanation       string
	MissingWords      []string
	CorrectedSpelling string
}

type RotatePuzzleInput struct {
}

type RotatePuzzleOutput struct {
	// Rotated is true when the active puzzle changed
	Rotated bool

	// PuzzleID is the now-active puzzle, empty when none covers the
	// current time
	PuzzleID string
}

type GetActivePuzzleInput struct {
}

type GetActivePuzzleOutput struct {
	Puzzle *models.Puzzle
}

type GetPlayerStatsInput struct {
	PlayerID string
}

type GetPlayerStatsOutput struct {
	Player       *models.Player
	TotalSolves  int
	TotalGuesses int

	// AvgGuesses is guesses-per-solve over solved puzzles, 0 when the
	// player has no solves
	AvgGuesses float64

	Streak int
}
