package mood

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/phrazzle/phrazzle/internal/services/mood Service

import "context"

// Service defines the interface for streak derivation and mood tier
// transitions. The guess log is the source of truth; the tier and best
// streak stored on the player record are a materialized view that only
// this service writes.
type Service interface {
	// GetStreak derives a player's current consecutive-week solve streak
	GetStreak(ctx context.Context, input *GetStreakInput) (*GetStreakOutput, error)

	// UpdateAfterSolve recomputes streak, best streak and tier after a
	// confirmed correct guess
	UpdateAfterSolve(ctx context.Context, input *UpdateAfterSolveInput) (*UpdateAfterSolveOutput, error)

	// HandleStreakBreak demotes a player after a week with no solve
	HandleStreakBreak(ctx context.Context, input *HandleStreakBreakInput) (*HandleStreakBreakOutput, error)
}
