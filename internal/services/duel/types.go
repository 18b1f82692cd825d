package duel

import (
	"time"

	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	"github.com/phrazzle/phrazzle/internal/models"
	duelRepo "github.com/phrazzle/phrazzle/internal/repositories/duel"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/game"
)

// Config holds the dependencies for the duel service
type Config struct {
	DuelRepo      duelRepo.Repository
	PuzzleRepo    puzzleRepo.Repository
	PlayerRepo    playerRepo.Repository
	GameService   game.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ChallengeInput contains the parameters for issuing a challenge
type ChallengeInput struct {
	// ChallengerID is the player issuing the challenge
	ChallengerID string

	// OpponentID is the player being challenged
	OpponentID string

	// Wager is the hint-coin stake, 0 for a friendly duel
	Wager int
}

type ChallengeOutput struct {
	Duel *models.Duel
}

// AcceptInput identifies the accepting opponent; their single incoming
// PENDING duel is resolved from storage
type AcceptInput struct {
	OpponentID string
}

type AcceptOutput struct {
	Duel *models.Duel
}

type DeclineInput struct {
	OpponentID string
}

type DeclineOutput struct {
	Duel *models.Duel
}

type CancelInput struct {
	ChallengerID string
}

type CancelOutput struct {
	Duel *models.Duel
}

// SubmitGuessInput contains one guess against the caller's active duel
type SubmitGuessInput struct {
	// PlayerID is the submitting player, either side of the duel
	PlayerID string

	// Text is the raw guess
	Text string
}

// SubmitGuessOutput is the race outcome after one guess
type SubmitGuessOutput struct {
	// IsCorrect is the verdict for this guess
	IsCorrect bool

	// Explanation describes the verdict when one is available
	Explanation string

	// MissingWords is set when the word pre-filter rejected the guess
	MissingWords []string

	// Completed is true once the duel has a winner, whether this call
	// decided it or an earlier one did
	Completed bool

	// WinnerID is set when Completed
	WinnerID string

	// WaitingForOpponent is true when the caller solved but the other
	// side has not yet
	WaitingForOpponent bool

	// CoinsTransferred is the settled wager amount, 0 for friendly
	// duels and for calls that did not perform the completion
	CoinsTransferred int

	// Duel is the duel state after this guess
	Duel *models.Duel
}

type GetDuelInput struct {
	DuelID string
}

type GetDuelOutput struct {
	Duel *models.Duel
}

type ExpireStaleInput struct {
	// MaxAge is how long an ACTIVE duel may run before it is resolved.
	// Zero means DefaultMaxDuelAge.
	MaxAge time.Duration
}

type ExpireStaleOutput struct {
	// Completed counts duels resolved in the solved side's favor
	Completed int

	// Cancelled counts duels where neither side had solved
	Cancelled int
}
