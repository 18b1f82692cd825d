package leaderboard

import (
	"github.com/phrazzle/phrazzle/internal/models"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	leaderboardRepo "github.com/phrazzle/phrazzle/internal/repositories/leaderboard"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
)

// Config holds the dependencies for the leaderboard service
type Config struct {
	LeaderboardRepo leaderboardRepo.Repository
	GuessRepo       guessRepo.Repository
	PuzzleRepo      puzzleRepo.Repository
	PlayerRepo      playerRepo.Repository
}

type GetWeeklyInput struct {
	PuzzleID string
}

type GetWeeklyOutput struct {
	// Entries is ordered by rank
	Entries []*models.WeeklyLeaderboardEntry

	// Frozen is true when the entries came from a persisted snapshot
	Frozen bool
}

type PersistWeeklyInput struct {
	PuzzleID string
}

type PersistWeeklyOutput struct {
	// AlreadyPersisted is true when a snapshot existed and nothing was
	// written
	AlreadyPersisted bool

	// Entries is the ranking now on record for the puzzle
	Entries []*models.WeeklyLeaderboardEntry
}

type GetAllTimeInput struct {
}

type GetAllTimeOutput struct {
	// Entries is ordered by rank; players with no solves are omitted
	Entries []*models.AllTimeLeaderboardEntry
}
