package models

import (
	"time"
)

// Player represents a participant in the weekly puzzle
type Player struct {
	// ID is the opaque identifier handed to us by the transport layer
	ID string

	// Name is the display name of the player
	Name string

	// MoodTier is the bot's current attitude toward this player (0-6)
	MoodTier int

	// BestStreak is the highest weekly solve streak ever reached.
	// Monotonic: written only when a new streak exceeds it.
	BestStreak int

	// HintCoins is the spendable currency balance shared with duel wagers
	HintCoins int

	// CreatedAt is when the player first interacted with the bot
	CreatedAt time.Time

	// UpdatedAt is when the player record was last written
	UpdatedAt time.Time
}
