package mood

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/phrazzle/phrazzle/internal/common/clock/mocks"
	uuidMocks "github.com/phrazzle/phrazzle/internal/common/uuid/mocks"
	"github.com/phrazzle/phrazzle/internal/models"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
)

type MoodServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mr       *miniredis.Miniredis
	client   *redis.Client

	guesses guessRepo.Repository
	puzzles puzzleRepo.Repository
	players playerRepo.Repository
	history moodHistoryRepo.Repository

	service Service
	ctx     context.Context
	testNow time.Time
}

func (s *MoodServiceTestSuite) SetupTest() {
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

	history, err := moodHistoryRepo.NewRedis(&moodHistoryRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.history = history

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	mockUUID := uuidMocks.NewMockUUID(s.mockCtrl)
	mockUUID.EXPECT().NewUUID().Return("test-uuid").AnyTimes()

	svc, err := New(&Config{
		GuessRepo:     s.guesses,
		PuzzleRepo:    s.puzzles,
		PlayerRepo:    s.players,
		HistoryRepo:   s.history,
		Clock:         mockClock,
		UUIDGenerator: mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MoodServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestMoodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MoodServiceTestSuite))
}

func (s *MoodServiceTestSuite) savePlayer(id string, tier, bestStreak int) {
	err := s.players.SavePlayer(s.ctx, &playerRepo.SavePlayerInput{
		Player: &models.Player{
			ID:         id,
			Name:       "Player " + id,
			MoodTier:   tier,
			BestStreak: bestStreak,
			CreatedAt:  s.testNow,
			UpdatedAt:  s.testNow,
		},
	})
	s.Require().NoError(err)
}

// solveWeeksAgo records a solved puzzle whose week started the given
// number of days before the test clock.
func (s *MoodServiceTestSuite) solveDaysAgo(playerID string, daysAgo int) {
	puzzleID := fmt.Sprintf("puzzle-%s-%d", playerID, daysAgo)
	weekStart := s.testNow.AddDate(0, 0, -daysAgo)

	err := s.puzzles.SavePuzzle(s.ctx, &puzzleRepo.SavePuzzleInput{
		Puzzle: &models.Puzzle{
			ID:        puzzleID,
			Answer:    "some answer",
			WeekStart: weekStart,
			WeekEnd:   weekStart.AddDate(0, 0, 7),
			CreatedAt: weekStart,
		},
	})
	s.Require().NoError(err)

	err = s.guesses.AddGuess(s.ctx, &guessRepo.AddGuessInput{
		Guess: &models.Guess{
			ID:          puzzleID + "-solve",
			PlayerID:    playerID,
			PuzzleID:    puzzleID,
			Text:        "some answer",
			IsCorrect:   true,
			GuessNumber: 1,
			CreatedAt:   weekStart.Add(time.Hour),
		},
	})
	s.Require().NoError(err)
}

func (s *MoodServiceTestSuite) TestTierFormula() {
	s.Equal(3, TierFor(6, 100))
	s.Equal(1, TierFor(20, 15))
	s.Equal(6, TierFor(100, 1000))
	s.Equal(0, TierFor(0, 0))
	s.Equal(0, TierFor(1, 50))
}

func (s *MoodServiceTestSuite) TestStreakEmpty() {
	out, err := s.service.GetStreak(s.ctx, &GetStreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(0, out.Streak)
}

func (s *MoodServiceTestSuite) TestStreakConsecutiveWeeks() {
	for _, daysAgo := range []int{0, 7, 14, 21} {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.GetStreak(s.ctx, &GetStreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(4, out.Streak)
}

func (s *MoodServiceTestSuite) TestStreakTruncatedByWideGap() {
	// Weeks solved 0, 7, 14 and 30 days ago: the 16-day gap between 14
	// and 30 exceeds the tolerance, so only the first three count.
	for _, daysAgo := range []int{0, 7, 14, 30} {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.GetStreak(s.ctx, &GetStreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(3, out.Streak)
}

func (s *MoodServiceTestSuite) TestStreakToleratesJitter() {
	// 9-day gap is within tolerance
	for _, daysAgo := range []int{0, 9, 16} {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.GetStreak(s.ctx, &GetStreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(3, out.Streak)
}

func (s *MoodServiceTestSuite) TestUpdateAfterSolveNoTierChange() {
	s.savePlayer("player-1", 0, 0)
	s.solveDaysAgo("player-1", 0)

	out, err := s.service.UpdateAfterSolve(s.ctx, &UpdateAfterSolveInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(out.TierChanged)
	s.Equal(1, out.Streak)
	s.Equal(1, out.TotalSolves)
	s.Equal(1, out.BestStreak)

	// Best streak was persisted even though the tier held
	player, err := s.players.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(1, player.BestStreak)
	s.Equal(0, player.MoodTier)

	// No transition, no audit entry
	entries, err := s.history.GetEntries(s.ctx, &moodHistoryRepo.GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(entries.Entries)
}

func (s *MoodServiceTestSuite) TestUpdateAfterSolveTierUp() {
	s.savePlayer("player-1", 0, 0)

	// Ten weekly solves: streak 10 and 10 total solves justify tier 1
	for daysAgo := 0; daysAgo < 70; daysAgo += 7 {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.UpdateAfterSolve(s.ctx, &UpdateAfterSolveInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(out.TierChanged)
	s.Equal(0, out.OldTier)
	s.Equal(1, out.NewTier)
	s.Equal(10, out.Streak)
	s.Equal(10, out.TotalSolves)

	entries, err := s.history.GetEntries(s.ctx, &moodHistoryRepo.GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(entries.Entries, 1)
	s.Equal(models.MoodReasonTierUp, entries.Entries[0].Reason)
	s.Equal(0, entries.Entries[0].OldTier)
	s.Equal(1, entries.Entries[0].NewTier)
}

func (s *MoodServiceTestSuite) TestBestStreakIsMonotonic() {
	s.savePlayer("player-1", 0, 12)
	s.solveDaysAgo("player-1", 0)

	out, err := s.service.UpdateAfterSolve(s.ctx, &UpdateAfterSolveInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(12, out.BestStreak)
}

func (s *MoodServiceTestSuite) TestUpdateAfterSolvePlayerNotFound() {
	_, err := s.service.UpdateAfterSolve(s.ctx, &UpdateAfterSolveInput{PlayerID: "ghost"})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *MoodServiceTestSuite) TestStreakBreakDemotesNovice() {
	s.savePlayer("player-1", 2, 4)
	for _, daysAgo := range []int{30, 37} {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.HandleStreakBreak(s.ctx, &HandleStreakBreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(out.TierChanged)
	s.Equal(2, out.OldTier)
	s.Equal(0, out.NewTier)

	entries, err := s.history.GetEntries(s.ctx, &moodHistoryRepo.GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(entries.Entries, 1)
	s.Equal(models.MoodReasonStreakBreak, entries.Entries[0].Reason)
}

func (s *MoodServiceTestSuite) TestStreakBreakVeteranFloor() {
	s.savePlayer("player-1", 5, 20)

	// 20 distinct solves keeps the floor at tier 2
	for daysAgo := 30; daysAgo < 170; daysAgo += 7 {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.HandleStreakBreak(s.ctx, &HandleStreakBreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(out.TierChanged)
	s.Equal(2, out.NewTier)
}

func (s *MoodServiceTestSuite) TestStreakBreakBelowFloorIsNoOp() {
	s.savePlayer("player-1", 1, 3)

	// 20 solves put the floor at 2, above the current tier: no demotion
	for daysAgo := 30; daysAgo < 170; daysAgo += 7 {
		s.solveDaysAgo("player-1", daysAgo)
	}

	out, err := s.service.HandleStreakBreak(s.ctx, &HandleStreakBreakInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(out.TierChanged)
	s.Equal(1, out.NewTier)

	entries, err := s.history.GetEntries(s.ctx, &moodHistoryRepo.GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(entries.Entries)
}
