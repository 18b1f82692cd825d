package duel

import "github.com/phrazzle/phrazzle/internal/models"

type CreateDuelInput struct {
	Duel *models.Duel
}

type GetDuelInput struct {
	DuelID string
}

type GetPendingDuelByOpponentInput struct {
	PlayerID string
}

type GetPendingDuelByChallengerInput struct {
	PlayerID string
}

type GetActiveDuelByPlayerInput struct {
	PlayerID string
}

type ListActiveDuelsInput struct {
}

type ListActiveDuelsOutput struct {
	Duels []*models.Duel
}

type UpdateDuelInput struct {
	DuelID string

	// Update mutates the duel in place. It runs inside the watched
	// transaction and may be retried, so it must be side-effect free.
	Update func(duel *models.Duel) error
}
