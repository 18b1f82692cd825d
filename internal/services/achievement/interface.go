package achievement

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/phrazzle/phrazzle/internal/services/achievement Service

import (
	"context"

	"github.com/phrazzle/phrazzle/internal/models"
)

// Service defines the interface for badge evaluation. The catalog is a
// fixed set of independent boolean rules; the unlock store is the only
// mutable state, and each (player, achievement) pair unlocks at most
// once regardless of how often the rules are re-evaluated.
type Service interface {
	// CheckAndAward evaluates every rule against the player's freshly
	// recomputed statistics and returns the achievements unlocked by
	// this invocation. Must only be called after a confirmed solve.
	CheckAndAward(ctx context.Context, input *CheckAndAwardInput) (*CheckAndAwardOutput, error)

	// GetUnlocked returns a player's unlocked achievements joined to
	// the catalog
	GetUnlocked(ctx context.Context, input *GetUnlockedInput) (*GetUnlockedOutput, error)

	// GetProgress reports unlocked/total counts per category
	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)

	// Catalog returns the full static catalog
	Catalog() []*models.Achievement
}
