package models

import (
	"time"
)

// WeeklyLeaderboardEntry is one row of a puzzle's final standings.
// A snapshot set is persisted at most once per puzzle.
type WeeklyLeaderboardEntry struct {
	// PuzzleID is the puzzle the ranking belongs to
	PuzzleID string

	// WeekStart is the puzzle's week-start date
	WeekStart time.Time

	// PlayerID is the ranked player
	PlayerID string

	// PlayerName is the display name at snapshot time
	PlayerName string

	// SolvedAt is the player's earliest correct-guess timestamp
	SolvedAt time.Time

	// GuessCount is how many guesses the solve took
	GuessCount int

	// Rank is the player's position, 1-based, no shared ranks
	Rank int
}

// AllTimeLeaderboardEntry is one row of the all-time standings,
// computed fresh on each call.
type AllTimeLeaderboardEntry struct {
	// PlayerID is the ranked player
	PlayerID string

	// PlayerName is the display name
	PlayerName string

	// TotalSolves is the count of distinct puzzles solved
	TotalSolves int

	// AvgGuesses is the lifetime average guesses per solve
	AvgGuesses float64

	// BestStreak is the player's best streak ever
	BestStreak int

	// Rank is the player's position, 1-based
	Rank int
}
