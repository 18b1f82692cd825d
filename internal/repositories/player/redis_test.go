package player

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

func (s *RedisRepositoryTestSuite) savePlayer(id string, coins int) {
	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: &models.Player{
			ID:        id,
			Name:      "Player " + id,
			HintCoins: coins,
			CreatedAt: s.testNow,
			UpdatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := &models.Player{
		ID:         "test-player-id",
		Name:       "Test Player",
		MoodTier:   3,
		BestStreak: 7,
		HintCoins:  12,
		CreatedAt:  s.testNow,
		UpdatedAt:  s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: player})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-player-id", retrieved.ID)
	s.Equal("Test Player", retrieved.Name)
	s.Equal(3, retrieved.MoodTier)
	s.Equal(7, retrieved.BestStreak)
	s.Equal(12, retrieved.HintCoins)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "missing",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestListPlayers() {
	s.savePlayer("player-1", 0)
	s.savePlayer("player-2", 5)

	out, err := s.repo.ListPlayers(context.Background(), &ListPlayersInput{})
	s.Require().NoError(err)
	s.Len(out.Players, 2)
}

func (s *RedisRepositoryTestSuite) TestAdjustCoins() {
	s.savePlayer("player-1", 10)

	out, err := s.repo.AdjustCoins(context.Background(), &AdjustCoinsInput{
		PlayerID: "player-1",
		Delta:    -4,
	})
	s.Require().NoError(err)
	s.Equal(6, out.Balance)

	player, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(6, player.HintCoins)
}

func (s *RedisRepositoryTestSuite) TestAdjustCoinsCannotGoNegative() {
	s.savePlayer("player-1", 3)

	_, err := s.repo.AdjustCoins(context.Background(), &AdjustCoinsInput{
		PlayerID: "player-1",
		Delta:    -5,
	})
	s.Require().ErrorIs(err, ErrInsufficientCoins)

	player, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(3, player.HintCoins)
}

func (s *RedisRepositoryTestSuite) TestTransferCoins() {
	s.savePlayer("loser", 10)
	s.savePlayer("winner", 2)

	err := s.repo.TransferCoins(context.Background(), &TransferCoinsInput{
		FromPlayerID: "loser",
		ToPlayerID:   "winner",
		Amount:       5,
	})
	s.Require().NoError(err)

	loser, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "loser"})
	s.Require().NoError(err)
	s.Equal(5, loser.HintCoins)

	winner, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "winner"})
	s.Require().NoError(err)
	s.Equal(7, winner.HintCoins)
}

func (s *RedisRepositoryTestSuite) TestTransferCoinsInsufficientBalance() {
	s.savePlayer("loser", 3)
	s.savePlayer("winner", 0)

	err := s.repo.TransferCoins(context.Background(), &TransferCoinsInput{
		FromPlayerID: "loser",
		ToPlayerID:   "winner",
		Amount:       5,
	})
	s.Require().ErrorIs(err, ErrInsufficientCoins)

	loser, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: "loser"})
	s.Require().NoError(err)
	s.Equal(3, loser.HintCoins)
}
