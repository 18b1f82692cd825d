package player

import "github.com/phrazzle/phrazzle/internal/models"

type SavePlayerInput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type ListPlayersInput struct {
}

type ListPlayersOutput struct {
	Players []*models.Player
}

type AdjustCoinsInput struct {
	PlayerID string

	// Delta is added to the balance; negative to spend
	Delta int
}

type AdjustCoinsOutput struct {
	// Balance is the resulting hint coin balance
	Balance int
}

type TransferCoinsInput struct {
	FromPlayerID string
	ToPlayerID   string
	Amount       int
}
