package moodhistory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/phrazzle/phrazzle/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := NewRedis(&Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addEntry(playerID string, n, oldTier, newTier int, reason models.MoodReason) {
	err := s.repo.AddEntry(s.ctx, &AddEntryInput{
		Entry: &models.MoodHistoryEntry{
			ID:        fmt.Sprintf("entry-%d", n),
			PlayerID:  playerID,
			OldTier:   oldTier,
			NewTier:   newTier,
			Reason:    reason,
			Streak:    n,
			CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Hour),
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetEntriesEmptyHistory() {
	out, err := s.repo.GetEntries(s.ctx, &GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestEntriesComeBackOldestFirst() {
	s.addEntry("player-1", 1, 0, 1, models.MoodReasonTierUp)
	s.addEntry("player-1", 2, 1, 2, models.MoodReasonTierUp)
	s.addEntry("player-1", 3, 2, 0, models.MoodReasonStreakBreak)

	out, err := s.repo.GetEntries(s.ctx, &GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)

	s.Equal("entry-1", out.Entries[0].ID)
	s.Equal("entry-2", out.Entries[1].ID)
	s.Equal("entry-3", out.Entries[2].ID)
	s.Equal(models.MoodReasonStreakBreak, out.Entries[2].Reason)
	s.Equal(0, out.Entries[2].NewTier)
}

func (s *RedisRepositoryTestSuite) TestHistoriesAreIsolatedPerPlayer() {
	s.addEntry("player-1", 1, 0, 1, models.MoodReasonTierUp)
	s.addEntry("player-2", 2, 3, 2, models.MoodReasonStreakBreak)

	out, err := s.repo.GetEntries(s.ctx, &GetEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal("player-1", out.Entries[0].PlayerID)
}
