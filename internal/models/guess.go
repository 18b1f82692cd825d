package models

import (
	"time"
)

// Guess is one immutable attempt at a puzzle. The append-only guess log
// is the source of truth for streak and stats derivation.
type Guess struct {
	// ID is the unique identifier for the guess
	ID string

	// PlayerID is the player who submitted the guess
	PlayerID string

	// PuzzleID is the puzzle the guess was made against
	PuzzleID string

	// Text is the raw submitted text
	Text string

	// IsCorrect is the adjudicated verdict
	IsCorrect bool

	// GuessNumber is the 1-based sequence number within (player, puzzle)
	GuessNumber int

	// MoodTier is the player's mood tier at submission time, before any update
	MoodTier int

	// CreatedAt is when the guess was submitted
	CreatedAt time.Time
}

// Solve is a per-puzzle view of one player's winning guess, used for
// weekly ranking and first-place counting.
type Solve struct {
	// PlayerID is the player who solved the puzzle
	PlayerID string

	// SolvedAt is the timestamp of the correct guess
	SolvedAt time.Time

	// GuessCount is how many guesses the solve took
	GuessCount int
}
