package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/phrazzle/phrazzle/internal/repositories/leaderboard Repository

import (
	"context"
)

// Repository defines the interface for weekly leaderboard snapshots.
// At most one snapshot set is ever persisted per puzzle.
type Repository interface {
	// SaveWeeklySnapshot persists a ranking exactly once per puzzle;
	// re-triggering after a snapshot exists is a no-op
	SaveWeeklySnapshot(ctx context.Context, input *SaveWeeklySnapshotInput) (*SaveWeeklySnapshotOutput, error)

	// GetWeeklySnapshot retrieves a puzzle's persisted ranking
	GetWeeklySnapshot(ctx context.Context, input *GetWeeklySnapshotInput) (*GetWeeklySnapshotOutput, error)

	// HasSnapshot reports whether a puzzle's ranking was already persisted
	HasSnapshot(ctx context.Context, input *HasSnapshotInput) (bool, error)
}
