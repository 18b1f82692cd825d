package duel

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

func (s *RedisRepositoryTestSuite) newDuel(id string) *models.Duel {
	return &models.Duel{
		ID:           id,
		ChallengerID: "challenger",
		OpponentID:   "opponent",
		PuzzleID:     "puzzle-1",
		Wager:        5,
		Status:       models.DuelStatusPending,
		CreatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetDuel() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	duel, err := s.repo.GetDuel(context.Background(), &GetDuelInput{DuelID: "duel-1"})
	s.Require().NoError(err)
	s.Equal("challenger", duel.ChallengerID)
	s.Equal(models.DuelStatusPending, duel.Status)

	incoming, err := s.repo.GetPendingDuelByOpponent(context.Background(), &GetPendingDuelByOpponentInput{
		PlayerID: "opponent",
	})
	s.Require().NoError(err)
	s.Equal("duel-1", incoming.ID)

	outgoing, err := s.repo.GetPendingDuelByChallenger(context.Background(), &GetPendingDuelByChallengerInput{
		PlayerID: "challenger",
	})
	s.Require().NoError(err)
	s.Equal("duel-1", outgoing.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateDuelRejectsSecondPendingChallenge() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	second := s.newDuel("duel-2")
	second.OpponentID = "someone-else"

	err = s.repo.CreateDuel(context.Background(), &CreateDuelInput{Duel: second})
	s.Require().ErrorIs(err, ErrChallengePending)

	// Nothing was partially applied for the rejected duel
	_, err = s.repo.GetDuel(context.Background(), &GetDuelInput{DuelID: "duel-2"})
	s.Require().ErrorIs(err, ErrDuelNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateDuelRejectsBusyOpponent() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	second := s.newDuel("duel-2")
	second.ChallengerID = "third-player"

	err = s.repo.CreateDuel(context.Background(), &CreateDuelInput{Duel: second})
	s.Require().ErrorIs(err, ErrChallengePending)

	// The third player's outgoing slot was released on rollback
	_, err = s.repo.GetPendingDuelByChallenger(context.Background(), &GetPendingDuelByChallengerInput{
		PlayerID: "third-player",
	})
	s.Require().ErrorIs(err, ErrDuelNotFound)
}

func (s *RedisRepositoryTestSuite) acceptDuel(duelID string) {
	_, err := s.repo.UpdateDuel(context.Background(), &UpdateDuelInput{
		DuelID: duelID,
		Update: func(d *models.Duel) error {
			d.Status = models.DuelStatusActive
			d.StartedAt = s.testNow
			return nil
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestAcceptMovesPointersToActive() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	s.acceptDuel("duel-1")

	// Pending slots released
	_, err = s.repo.GetPendingDuelByOpponent(context.Background(), &GetPendingDuelByOpponentInput{
		PlayerID: "opponent",
	})
	s.Require().ErrorIs(err, ErrDuelNotFound)

	// Both players now point at the active duel
	for _, playerID := range []string{"challenger", "opponent"} {
		active, err := s.repo.GetActiveDuelByPlayer(context.Background(), &GetActiveDuelByPlayerInput{
			PlayerID: playerID,
		})
		s.Require().NoError(err)
		s.Equal("duel-1", active.ID)
	}

	// And neither can be challenged into a new active duel
	err = s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-2"),
	})
	s.Require().ErrorIs(err, ErrDuelActive)
}

func (s *RedisRepositoryTestSuite) TestCompleteReleasesActivePointers() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)
	s.acceptDuel("duel-1")

	solvedAt := s.testNow.Add(time.Minute)
	updated, err := s.repo.UpdateDuel(context.Background(), &UpdateDuelInput{
		DuelID: "duel-1",
		Update: func(d *models.Duel) error {
			d.ChallengerSolvedAt = &solvedAt
			later := solvedAt.Add(time.Millisecond)
			d.OpponentSolvedAt = &later
			d.WinnerID = d.ChallengerID
			d.Status = models.DuelStatusCompleted
			d.CompletedAt = later
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(models.DuelStatusCompleted, updated.Status)

	for _, playerID := range []string{"challenger", "opponent"} {
		_, err := s.repo.GetActiveDuelByPlayer(context.Background(), &GetActiveDuelByPlayerInput{
			PlayerID: playerID,
		})
		s.Require().ErrorIs(err, ErrDuelNotFound)
	}
}

func (s *RedisRepositoryTestSuite) TestDeclineReleasesPendingSlots() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.UpdateDuel(context.Background(), &UpdateDuelInput{
		DuelID: "duel-1",
		Update: func(d *models.Duel) error {
			d.Status = models.DuelStatusDeclined
			return nil
		},
	})
	s.Require().NoError(err)

	// Challenger can immediately issue a new challenge
	err = s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-2"),
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestUpdateDuelPropagatesUpdateError() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	wantErr := context.Canceled
	_, err = s.repo.UpdateDuel(context.Background(), &UpdateDuelInput{
		DuelID: "duel-1",
		Update: func(d *models.Duel) error {
			return wantErr
		},
	})
	s.Require().ErrorIs(err, wantErr)

	// Duel untouched
	duel, err := s.repo.GetDuel(context.Background(), &GetDuelInput{DuelID: "duel-1"})
	s.Require().NoError(err)
	s.Equal(models.DuelStatusPending, duel.Status)
}

func (s *RedisRepositoryTestSuite) TestUpdateDuelNotFound() {
	_, err := s.repo.UpdateDuel(context.Background(), &UpdateDuelInput{
		DuelID: "missing",
		Update: func(d *models.Duel) error { return nil },
	})
	s.Require().ErrorIs(err, ErrDuelNotFound)
}

func (s *RedisRepositoryTestSuite) TestListActiveDuels() {
	err := s.repo.CreateDuel(context.Background(), &CreateDuelInput{
		Duel: s.newDuel("duel-1"),
	})
	s.Require().NoError(err)

	// Pending duels are not listed
	list, err := s.repo.ListActiveDuels(context.Background(), &ListActiveDuelsInput{})
	s.Require().NoError(err)
	s.Empty(list.Duels)

	s.acceptDuel("duel-1")

	list, err = s.repo.ListActiveDuels(context.Background(), &ListActiveDuelsInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Duels, 1)
	s.Equal("duel-1", list.Duels[0].ID)

	_, err = s.repo.UpdateDuel(context.Background(), &UpdateDuelInput{
		DuelID: "duel-1",
		Update: func(d *models.Duel) error {
			d.Status = models.DuelStatusCancelled
			return nil
		},
	})
	s.Require().NoError(err)

	list, err = s.repo.ListActiveDuels(context.Background(), &ListActiveDuelsInput{})
	s.Require().NoError(err)
	s.Empty(list.Duels)
}
