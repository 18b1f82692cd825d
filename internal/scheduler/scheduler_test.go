package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/phrazzle/phrazzle/internal/common/clock/mocks"
	uuidMocks "github.com/phrazzle/phrazzle/internal/common/uuid/mocks"
	"github.com/phrazzle/phrazzle/internal/models"
	duelRepo "github.com/phrazzle/phrazzle/internal/repositories/duel"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	leaderboardRepo "github.com/phrazzle/phrazzle/internal/repositories/leaderboard"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/duel"
	"github.com/phrazzle/phrazzle/internal/services/game"
	gameMocks "github.com/phrazzle/phrazzle/internal/services/game/mocks"
	"github.com/phrazzle/phrazzle/internal/services/leaderboard"
	"github.com/phrazzle/phrazzle/internal/services/mood"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mr       *miniredis.Miniredis
	client   *redis.Client

	guesses  guessRepo.Repository
	puzzles  puzzleRepo.Repository
	players  playerRepo.Repository
	boards   leaderboardRepo.Repository
	history  moodHistoryRepo.Repository
	moodSvc  mood.Service
	boardSvc leaderboard.Service
	duelSvc  duel.Service
	gameSvc  *gameMocks.MockService

	scheduler *Scheduler
	ctx       context.Context
	now       time.Time
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	guesses, err := guessRepo.NewRedis(&guessRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.guesses = guesses

	puzzles, err := puzzleRepo.NewRedis(&puzzleRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.puzzles = puzzles

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.players = players

	boards, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.boards = boards

	history, err := moodHistoryRepo.NewRedis(&moodHistoryRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.history = history

	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 9, 1, 0, 0, 0, time.UTC)

	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	mockUUID := uuidMocks.NewMockUUID(s.mockCtrl)
	mockUUID.EXPECT().NewUUID().Return("test-uuid").AnyTimes()

	moodSvc, err := mood.New(&mood.Config{
		GuessRepo:     s.guesses,
		PuzzleRepo:    s.puzzles,
		PlayerRepo:    s.players,
		HistoryRepo:   s.history,
		Clock:         mockClock,
		UUIDGenerator: mockUUID,
	})
	s.Require().NoError(err)
	s.moodSvc = moodSvc

	boardSvc, err := leaderboard.New(&leaderboard.Config{
		LeaderboardRepo: s.boards,
		GuessRepo:       s.guesses,
		PuzzleRepo:      s.puzzles,
		PlayerRepo:      s.players,
	})
	s.Require().NoError(err)
	s.boardSvc = boardSvc

	s.gameSvc = gameMocks.NewMockService(s.mockCtrl)

	duels, err := duelRepo.NewRedis(&duelRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	duelSvc, err := duel.New(&duel.Config{
		DuelRepo:      duels,
		PuzzleRepo:    s.puzzles,
		PlayerRepo:    s.players,
		GameService:   s.gameSvc,
		Clock:         mockClock,
		UUIDGenerator: mockUUID,
	})
	s.Require().NoError(err)
	s.duelSvc = duelSvc

	sched, err := New(&Config{
		GameService:        s.gameSvc,
		DuelService:        s.duelSvc,
		LeaderboardService: s.boardSvc,
		MoodService:        s.moodSvc,
		PlayerRepo:         s.players,
		PuzzleRepo:         s.puzzles,
		GuessRepo:          s.guesses,
		Clock:              mockClock,
	})
	s.Require().NoError(err)
	s.scheduler = sched
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) savePuzzle(id string, weekStart time.Time, active bool) {
	err := s.puzzles.SavePuzzle(s.ctx, &puzzleRepo.SavePuzzleInput{
		Puzzle: &models.Puzzle{
			ID:        id,
			Clue:      "a clue",
			Answer:    "an answer",
			WeekStart: weekStart,
			WeekEnd:   weekStart.Add(7 * 24 * time.Hour),
		},
	})
	s.Require().NoError(err)
	if active {
		s.Require().NoError(s.puzzles.SetActivePuzzle(s.ctx, &puzzleRepo.SetActivePuzzleInput{
			PuzzleID: id,
		}))
	}
}

func (s *SchedulerTestSuite) savePlayer(id string, tier int) {
	err := s.players.SavePlayer(s.ctx, &playerRepo.SavePlayerInput{
		Player: &models.Player{
			ID:       id,
			Name:     id,
			MoodTier: tier,
		},
	})
	s.Require().NoError(err)
}

func (s *SchedulerTestSuite) recordSolve(playerID, puzzleID string, at time.Time) {
	err := s.guesses.AddGuess(s.ctx, &guessRepo.AddGuessInput{
		Guess: &models.Guess{
			ID:          "guess-" + playerID + "-" + puzzleID,
			PlayerID:    playerID,
			PuzzleID:    puzzleID,
			Text:        "an answer",
			IsCorrect:   true,
			GuessNumber: 1,
			CreatedAt:   at,
		},
	})
	s.Require().NoError(err)
}

func (s *SchedulerTestSuite) TestTickBeforeWeekEndIsNoOp() {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s.savePuzzle("puzzle-1", weekStart, true)
	s.now = weekStart.Add(3 * 24 * time.Hour)

	s.Require().NoError(s.scheduler.Tick(s.ctx))

	_, err := s.boards.GetWeeklySnapshot(s.ctx, &leaderboardRepo.GetWeeklySnapshotInput{
		PuzzleID: "puzzle-1",
	})
	s.Require().ErrorIs(err, leaderboardRepo.ErrSnapshotNotFound)
}

func (s *SchedulerTestSuite) TestTickWithNoActivePuzzleJustRotates() {
	s.gameSvc.EXPECT().RotatePuzzle(gomock.Any(), gomock.Any()).
		Return(&game.RotatePuzzleOutput{}, nil)

	s.Require().NoError(s.scheduler.Tick(s.ctx))
}

func (s *SchedulerTestSuite) TestWeekEndFreezesBoardAndRotates() {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s.savePuzzle("puzzle-1", weekStart, true)
	s.savePlayer("solver", 2)
	s.recordSolve("solver", "puzzle-1", weekStart.Add(time.Hour))
	s.now = weekStart.Add(7*24*time.Hour + time.Hour)

	s.gameSvc.EXPECT().RotatePuzzle(gomock.Any(), gomock.Any()).
		Return(&game.RotatePuzzleOutput{Rotated: true, PuzzleID: "puzzle-2"}, nil)

	s.Require().NoError(s.scheduler.Tick(s.ctx))

	snapshot, err := s.boards.GetWeeklySnapshot(s.ctx, &leaderboardRepo.GetWeeklySnapshotInput{
		PuzzleID: "puzzle-1",
	})
	s.Require().NoError(err)
	s.Require().Len(snapshot.Entries, 1)
	s.Equal("solver", snapshot.Entries[0].PlayerID)
}

func (s *SchedulerTestSuite) TestWeekEndDemotesNonSolvers() {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s.savePuzzle("puzzle-1", weekStart, true)
	s.savePlayer("solver", 3)
	s.savePlayer("idler", 3)
	s.recordSolve("solver", "puzzle-1", weekStart.Add(time.Hour))
	s.now = weekStart.Add(7*24*time.Hour + time.Hour)

	s.gameSvc.EXPECT().RotatePuzzle(gomock.Any(), gomock.Any()).
		Return(&game.RotatePuzzleOutput{}, nil)

	s.Require().NoError(s.scheduler.Tick(s.ctx))

	solver, err := s.players.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "solver"})
	s.Require().NoError(err)
	s.Equal(3, solver.MoodTier)

	idler, err := s.players.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "idler"})
	s.Require().NoError(err)
	s.Equal(0, idler.MoodTier)
}
