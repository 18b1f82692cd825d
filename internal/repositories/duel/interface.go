package duel

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/duel Repository

import (
	"context"

	"github.com/phrazzle/phrazzle/internal/models"
)

// Repository defines the interface for duel data persistence.
//
// The per-player pointer keys (one pending-outgoing, one pending-incoming,
// one active) are written in the same step as the duel row, which makes
// the "at most one" invariants a storage-level constraint rather than an
// advisory check.
type Repository interface {
	// CreateDuel persists a new PENDING duel, enforcing the per-player
	// pending/active uniqueness invariants
	CreateDuel(ctx context.Context, input *CreateDuelInput) error

	// GetDuel retrieves a duel by ID
	GetDuel(ctx context.Context, input *GetDuelInput) (*models.Duel, error)

	// GetPendingDuelByOpponent retrieves a player's incoming PENDING duel
	GetPendingDuelByOpponent(ctx context.Context, input *GetPendingDuelByOpponentInput) (*models.Duel, error)

	// GetPendingDuelByChallenger retrieves a player's outgoing PENDING duel
	GetPendingDuelByChallenger(ctx context.Context, input *GetPendingDuelByChallengerInput) (*models.Duel, error)

	// GetActiveDuelByPlayer retrieves the duel a player is racing in
	GetActiveDuelByPlayer(ctx context.Context, input *GetActiveDuelByPlayerInput) (*models.Duel, error)

	// ListActiveDuels retrieves every ACTIVE duel
	ListActiveDuels(ctx context.Context, input *ListActiveDuelsInput) (*ListActiveDuelsOutput, error)

	// UpdateDuel applies a mutation under an optimistic transaction
	// scoped to the single duel row, so concurrent completions
	// serialize and exactly one performs the winner determination
	UpdateDuel(ctx context.Context, input *UpdateDuelInput) (*models.Duel, error)
}
