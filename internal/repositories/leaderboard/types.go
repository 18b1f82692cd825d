package leaderboard

import "github.com/phrazzle/phrazzle/internal/models"

type SaveWeeklySnapshotInput struct {
	PuzzleID string
	Entries  []*models.WeeklyLeaderboardEntry
}

type SaveWeeklySnapshotOutput struct {
	// AlreadyPersisted is true when a snapshot existed and nothing was written
	AlreadyPersisted bool
}

type GetWeeklySnapshotInput struct {
	PuzzleID string
}

type GetWeeklySnapshotOutput struct {
	Entries []*models.WeeklyLeaderboardEntry
}

type HasSnapshotInput struct {
	PuzzleID string
}
