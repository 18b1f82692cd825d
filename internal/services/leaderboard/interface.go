package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/phrazzle/phrazzle/internal/services/leaderboard Service

import "context"

// Service defines the interface for weekly and all-time rankings.
// Weekly standings are computed live from the guess log until the week
// ends, then frozen into a snapshot exactly once.
type Service interface {
	// GetWeekly returns a puzzle's standings, preferring the persisted
	// snapshot when one exists
	GetWeekly(ctx context.Context, input *GetWeeklyInput) (*GetWeeklyOutput, error)

	// PersistWeekly freezes a puzzle's live standings. Re-triggering
	// after a snapshot exists is a no-op, not an error.
	PersistWeekly(ctx context.Context, input *PersistWeeklyInput) (*PersistWeeklyOutput, error)

	// GetAllTime computes the all-time standings fresh
	GetAllTime(ctx context.Context, input *GetAllTimeInput) (*GetAllTimeOutput, error)
}
