package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/player Repository

import (
	"context"

	"github.com/phrazzle/phrazzle/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayers retrieves all known players
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// AdjustCoins atomically changes a player's hint coin balance
	AdjustCoins(ctx context.Context, input *AdjustCoinsInput) (*AdjustCoinsOutput, error)

	// TransferCoins atomically moves coins between two players
	TransferCoins(ctx context.Context, input *TransferCoinsInput) error
}
