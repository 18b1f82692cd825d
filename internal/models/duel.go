package models

import (
	"time"
)

// DuelStatus represents the current state of a duel
type DuelStatus string

const (
	// DuelStatusPending indicates a challenge waiting for the opponent
	DuelStatusPending DuelStatus = "pending"

	// DuelStatusActive indicates both players are racing to solve
	DuelStatusActive DuelStatus = "active"

	// DuelStatusCompleted indicates a winner has been recorded
	DuelStatusCompleted DuelStatus = "completed"

	// DuelStatusDeclined indicates the opponent refused the challenge
	DuelStatusDeclined DuelStatus = "declined"

	// DuelStatusCancelled indicates the challenger withdrew the challenge
	DuelStatusCancelled DuelStatus = "cancelled"
)

// Terminal reports whether no further transition may leave this status
func (s DuelStatus) Terminal() bool {
	return s == DuelStatusCompleted || s == DuelStatusDeclined || s == DuelStatusCancelled
}

// Duel is an asynchronous two-player race to solve the same puzzle.
// The assigned puzzle is never the currently active weekly puzzle.
type Duel struct {
	// ID is the unique identifier for the duel
	ID string

	// ChallengerID is the player who issued the challenge
	ChallengerID string

	// OpponentID is the player who was challenged
	OpponentID string

	// PuzzleID is the assigned puzzle both players race on
	PuzzleID string

	// Wager is the hint-coin stake, 0 for a friendly duel
	Wager int

	// ChallengerSolvedAt is when the challenger solved, nil until then
	ChallengerSolvedAt *time.Time

	// OpponentSolvedAt is when the opponent solved, nil until then
	OpponentSolvedAt *time.Time

	// WinnerID is the winning player, empty until both sides resolve
	WinnerID string

	// Status is the current state of the duel
	Status DuelStatus

	// CreatedAt is when the challenge was issued
	CreatedAt time.Time

	// StartedAt is when the challenge was accepted
	StartedAt time.Time

	// CompletedAt is when the winner was recorded
	CompletedAt time.Time
}
