package achievement

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/achievement Repository

import (
	"context"
)

// Repository defines the interface for unlocked-achievement persistence.
// The catalog itself is static and lives in the achievement service.
type Repository interface {
	// TryUnlock records an unlock if, and only if, the (player,
	// achievement) pair has never been recorded before
	TryUnlock(ctx context.Context, input *TryUnlockInput) (*TryUnlockOutput, error)

	// GetUnlocked retrieves all of a player's unlocked achievements
	GetUnlocked(ctx context.Context, input *GetUnlockedInput) (*GetUnlockedOutput, error)
}
