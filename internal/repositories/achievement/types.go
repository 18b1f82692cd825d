package achievement

import (
	"time"

	"github.com/phrazzle/phrazzle/internal/models"
)

type TryUnlockInput struct {
	PlayerID       string
	AchievementKey string
	UnlockedAt     time.Time
}

type TryUnlockOutput struct {
	// Unlocked is true only for the first ever unlock of this pair
	Unlocked bool
}

type GetUnlockedInput struct {
	PlayerID string
}

type GetUnlockedOutput struct {
	Unlocked []*models.UnlockedAchievement
}
