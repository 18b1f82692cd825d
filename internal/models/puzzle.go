package models

import (
	"time"
)

// Puzzle represents one weekly phrase puzzle
type Puzzle struct {
	// ID is the unique identifier for the puzzle
	ID string

	// Clue is the text shown to players
	Clue string

	// Answer is the correct phrase
	Answer string

	// WeekStart is when this puzzle's week begins
	WeekStart time.Time

	// WeekEnd is when this puzzle's week ends
	WeekEnd time.Time

	// Active indicates this is the current weekly puzzle.
	// At most one puzzle is active at a time.
	Active bool

	// CreatedAt is when the puzzle was loaded
	CreatedAt time.Time
}
