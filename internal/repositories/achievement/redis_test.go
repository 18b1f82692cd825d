package achievement

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
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

func (s *RedisRepositoryTestSuite) TestTryUnlockFirstTime() {
	out, err := s.repo.TryUnlock(context.Background(), &TryUnlockInput{
		PlayerID:       "player-1",
		AchievementKey: "solve_5",
		UnlockedAt:     s.testNow,
	})
	s.Require().NoError(err)
	s.True(out.Unlocked)
}

func (s *RedisRepositoryTestSuite) TestTryUnlockIsExactlyOnce() {
	first, err := s.repo.TryUnlock(context.Background(), &TryUnlockInput{
		PlayerID:       "player-1",
		AchievementKey: "solve_5",
		UnlockedAt:     s.testNow,
	})
	s.Require().NoError(err)
	s.True(first.Unlocked)

	// The same pair can never be recorded twice
	second, err := s.repo.TryUnlock(context.Background(), &TryUnlockInput{
		PlayerID:       "player-1",
		AchievementKey: "solve_5",
		UnlockedAt:     s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.False(second.Unlocked)

	out, err := s.repo.GetUnlocked(context.Background(), &GetUnlockedInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Unlocked, 1)
	s.Equal("solve_5", out.Unlocked[0].AchievementKey)

	// The original unlock time is preserved
	s.Equal(s.testNow.UnixNano(), out.Unlocked[0].UnlockedAt.UnixNano())
}

func (s *RedisRepositoryTestSuite) TestUnlocksAreScopedPerPlayer() {
	_, err := s.repo.TryUnlock(context.Background(), &TryUnlockInput{
		PlayerID:       "player-1",
		AchievementKey: "solve_5",
		UnlockedAt:     s.testNow,
	})
	s.Require().NoError(err)

	out, err := s.repo.TryUnlock(context.Background(), &TryUnlockInput{
		PlayerID:       "player-2",
		AchievementKey: "solve_5",
		UnlockedAt:     s.testNow,
	})
	s.Require().NoError(err)
	s.True(out.Unlocked)
}

func (s *RedisRepositoryTestSuite) TestGetUnlockedEmpty() {
	out, err := s.repo.GetUnlocked(context.Background(), &GetUnlockedInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Empty(out.Unlocked)
}
