package guess

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addGuess(playerID, puzzleID string, number int, correct bool, at time.Time) {
	err := s.repo.AddGuess(context.Background(), &AddGuessInput{
		Guess: &models.Guess{
			ID:          playerID + "-" + puzzleID + "-guess",
			PlayerID:    playerID,
			PuzzleID:    puzzleID,
			Text:        "some guess",
			IsCorrect:   correct,
			GuessNumber: number,
			CreatedAt:   at,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGuessLogIsOrdered() {
	s.addGuess("player-1", "puzzle-1", 1, false, s.testNow)
	s.addGuess("player-1", "puzzle-1", 2, false, s.testNow.Add(time.Minute))
	s.addGuess("player-1", "puzzle-1", 3, true, s.testNow.Add(2*time.Minute))

	out, err := s.repo.GetGuesses(context.Background(), &GetGuessesInput{
		PlayerID: "player-1",
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Guesses, 3)

	s.Equal(1, out.Guesses[0].GuessNumber)
	s.Equal(3, out.Guesses[2].GuessNumber)
	s.True(out.Guesses[2].IsCorrect)

	count, err := s.repo.CountGuesses(context.Background(), &CountGuessesInput{
		PlayerID: "player-1",
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *RedisRepositoryTestSuite) TestLifetimeGuessCountSpansPuzzles() {
	s.addGuess("player-1", "puzzle-1", 1, true, s.testNow)
	s.addGuess("player-1", "puzzle-2", 1, false, s.testNow)
	s.addGuess("player-1", "puzzle-2", 2, true, s.testNow)

	count, err := s.repo.CountAllGuesses(context.Background(), &CountAllGuessesInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *RedisRepositoryTestSuite) TestSolvedIndexes() {
	s.addGuess("player-1", "puzzle-1", 1, false, s.testNow)

	solved, err := s.repo.HasSolved(context.Background(), &HasSolvedInput{
		PlayerID: "player-1",
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.False(solved)

	s.addGuess("player-1", "puzzle-1", 2, true, s.testNow.Add(time.Minute))

	solved, err = s.repo.HasSolved(context.Background(), &HasSolvedInput{
		PlayerID: "player-1",
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.True(solved)

	puzzleIDs, err := s.repo.GetSolvedPuzzleIDs(context.Background(), &GetSolvedPuzzleIDsInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Equal([]string{"puzzle-1"}, puzzleIDs)

	solves, err := s.repo.CountSolves(context.Background(), &CountSolvesInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Equal(1, solves)

	counts, err := s.repo.GetSolveGuessCounts(context.Background(), &GetSolveGuessCountsInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Equal(map[string]int{"puzzle-1": 2}, counts)
}

func (s *RedisRepositoryTestSuite) TestPuzzleSolvesOrderedBySolveTime() {
	s.addGuess("player-2", "puzzle-1", 4, true, s.testNow.Add(time.Hour))
	s.addGuess("player-1", "puzzle-1", 2, true, s.testNow)
	s.addGuess("player-3", "puzzle-1", 1, true, s.testNow.Add(2*time.Hour))

	solves, err := s.repo.GetPuzzleSolves(context.Background(), &GetPuzzleSolvesInput{
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.Require().Len(solves, 3)

	s.Equal("player-1", solves[0].PlayerID)
	s.Equal(2, solves[0].GuessCount)
	s.Equal("player-2", solves[1].PlayerID)
	s.Equal("player-3", solves[2].PlayerID)
	s.Equal(s.testNow.UnixNano(), solves[0].SolvedAt.UnixNano())

	first, err := s.repo.GetFirstSolver(context.Background(), &GetFirstSolverInput{
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.Equal("player-1", first)
}

func (s *RedisRepositoryTestSuite) TestGetFirstSolverNoSolves() {
	_, err := s.repo.GetFirstSolver(context.Background(), &GetFirstSolverInput{
		PuzzleID: "puzzle-1",
	})
	s.Require().ErrorIs(err, ErrNoSolves)
}
