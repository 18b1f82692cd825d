package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/phrazzle/phrazzle/internal/models"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	leaderboardRepo "github.com/phrazzle/phrazzle/internal/repositories/leaderboard"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client

	snapshots leaderboardRepo.Repository
	guesses   guessRepo.Repository
	puzzles   puzzleRepo.Repository
	players   playerRepo.Repository

	service Service
	ctx     context.Context
	testNow time.Time
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.snapshots, err = leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.guesses, err = guessRepo.NewRedis(&guessRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.puzzles, err = puzzleRepo.NewRedis(&puzzleRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.players, err = playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		LeaderboardRepo: s.snapshots,
		GuessRepo:       s.guesses,
		PuzzleRepo:      s.puzzles,
		PlayerRepo:      s.players,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func (s *LeaderboardServiceTestSuite) savePuzzle(id string) {
	err := s.puzzles.SavePuzzle(s.ctx, &puzzleRepo.SavePuzzleInput{
		Puzzle: &models.Puzzle{
			ID:        id,
			Answer:    "some answer",
			WeekStart: s.testNow.AddDate(0, 0, -1),
			WeekEnd:   s.testNow.AddDate(0, 0, 6),
			CreatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *LeaderboardServiceTestSuite) savePlayer(id, name string, bestStreak int) {
	err := s.players.SavePlayer(s.ctx, &playerRepo.SavePlayerInput{
		Player: &models.Player{
			ID:         id,
			Name:       name,
			BestStreak: bestStreak,
			CreatedAt:  s.testNow,
			UpdatedAt:  s.testNow,
		},
	})
	s.Require().NoError(err)
}

// solve records wrong guesses followed by a correct one at the given
// offset from the test clock.
func (s *LeaderboardServiceTestSuite) solve(playerID, puzzleID string, guessCount int, offset time.Duration) {
	solvedAt := s.testNow.Add(offset)
	for n := 1; n < guessCount; n++ {
		err := s.guesses.AddGuess(s.ctx, &guessRepo.AddGuessInput{
			Guess: &models.Guess{
				ID:          fmt.Sprintf("%s-%s-%d", puzzleID, playerID, n),
				PlayerID:    playerID,
				PuzzleID:    puzzleID,
				Text:        "wrong",
				GuessNumber: n,
				CreatedAt:   solvedAt.Add(-time.Minute),
			},
		})
		s.Require().NoError(err)
	}
	err := s.guesses.AddGuess(s.ctx, &guessRepo.AddGuessInput{
		Guess: &models.Guess{
			ID:          fmt.Sprintf("%s-%s-solve", puzzleID, playerID),
			PlayerID:    playerID,
			PuzzleID:    puzzleID,
			Text:        "some answer",
			IsCorrect:   true,
			GuessNumber: guessCount,
			CreatedAt:   solvedAt,
		},
	})
	s.Require().NoError(err)
}

func (s *LeaderboardServiceTestSuite) TestWeeklyRanksBySolveTime() {
	s.savePuzzle("puzzle-1")
	s.savePlayer("player-1", "Alex", 0)
	s.savePlayer("player-2", "Brook", 0)
	s.savePlayer("player-3", "Casey", 0)

	s.solve("player-2", "puzzle-1", 3, 1*time.Hour)
	s.solve("player-1", "puzzle-1", 1, 2*time.Hour)
	s.solve("player-3", "puzzle-1", 5, 3*time.Hour)

	out, err := s.service.GetWeekly(s.ctx, &GetWeeklyInput{PuzzleID: "puzzle-1"})
	s.Require().NoError(err)
	s.False(out.Frozen)
	s.Require().Len(out.Entries, 3)

	s.Equal("player-2", out.Entries[0].PlayerID)
	s.Equal("Brook", out.Entries[0].PlayerName)
	s.Equal(1, out.Entries[0].Rank)
	s.Equal(3, out.Entries[0].GuessCount)

	s.Equal("player-1", out.Entries[1].PlayerID)
	s.Equal(2, out.Entries[1].Rank)

	s.Equal("player-3", out.Entries[2].PlayerID)
	s.Equal(3, out.Entries[2].Rank)
}

func (s *LeaderboardServiceTestSuite) TestWeeklyEmptyPuzzle() {
	s.savePuzzle("puzzle-1")

	out, err := s.service.GetWeekly(s.ctx, &GetWeeklyInput{PuzzleID: "puzzle-1"})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *LeaderboardServiceTestSuite) TestPersistWeeklyIsIdempotent() {
	s.savePuzzle("puzzle-1")
	s.savePlayer("player-1", "Alex", 0)
	s.solve("player-1", "puzzle-1", 2, time.Hour)

	first, err := s.service.PersistWeekly(s.ctx, &PersistWeeklyInput{PuzzleID: "puzzle-1"})
	s.Require().NoError(err)
	s.False(first.AlreadyPersisted)
	s.Require().Len(first.Entries, 1)

	// a later solve must not alter the frozen standings
	s.savePlayer("player-2", "Brook", 0)
	s.solve("player-2", "puzzle-1", 1, 2*time.Hour)

	second, err := s.service.PersistWeekly(s.ctx, &PersistWeeklyInput{PuzzleID: "puzzle-1"})
	s.Require().NoError(err)
	s.True(second.AlreadyPersisted)
	s.Require().Len(second.Entries, 1)
	s.Equal("player-1", second.Entries[0].PlayerID)

	// reads now come from the snapshot
	weekly, err := s.service.GetWeekly(s.ctx, &GetWeeklyInput{PuzzleID: "puzzle-1"})
	s.Require().NoError(err)
	s.True(weekly.Frozen)
	s.Require().Len(weekly.Entries, 1)
}

func (s *LeaderboardServiceTestSuite) TestAllTimeOrdering() {
	s.savePlayer("player-1", "Alex", 4)
	s.savePlayer("player-2", "Brook", 2)
	s.savePlayer("player-3", "Casey", 0)
	s.savePlayer("player-4", "Drew", 0)

	for i := 0; i < 3; i++ {
		puzzleID := fmt.Sprintf("puzzle-%d", i)
		s.savePuzzle(puzzleID)
		s.solve("player-1", puzzleID, 2, time.Hour)
	}
	// same solve count as player-1 but a worse average
	for i := 0; i < 3; i++ {
		s.solve("player-2", fmt.Sprintf("puzzle-%d", i), 4, 2*time.Hour)
	}
	s.solve("player-3", "puzzle-0", 1, 3*time.Hour)

	out, err := s.service.GetAllTime(s.ctx, &GetAllTimeInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)

	s.Equal("player-1", out.Entries[0].PlayerID)
	s.Equal(1, out.Entries[0].Rank)
	s.Equal(3, out.Entries[0].TotalSolves)
	s.Equal(2.0, out.Entries[0].AvgGuesses)
	s.Equal(4, out.Entries[0].BestStreak)

	s.Equal("player-2", out.Entries[1].PlayerID)
	s.Equal(2, out.Entries[1].Rank)

	s.Equal("player-3", out.Entries[2].PlayerID)
	s.Equal(3, out.Entries[2].Rank)
}
