package duel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	"github.com/phrazzle/phrazzle/internal/models"
	duelRepo "github.com/phrazzle/phrazzle/internal/repositories/duel"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/game"
)

// DefaultMaxDuelAge is how long an ACTIVE duel may run before the
// expiry sweep resolves it
const DefaultMaxDuelAge = 7 * 24 * time.Hour

// Define errors
var (
	ErrSelfChallenge     = errors.New("cannot challenge yourself")
	ErrNegativeWager     = errors.New("wager cannot be negative")
	ErrInsufficientCoins = errors.New("not enough hint coins to cover the wager")
	ErrNoPuzzleAvailable = errors.New("no puzzle available for a duel")
	ErrNoPendingDuel     = errors.New("no pending duel for this player")
	ErrNoActiveDuel      = errors.New("no active duel for this player")
	ErrNotPending        = errors.New("duel is not pending")
	ErrNotActive         = errors.New("duel is not active")
	ErrSideAlreadySolved = errors.New("player already solved their duel puzzle")
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilDuelRepo       = errors.New("duel repository cannot be nil")
	ErrNilPuzzleRepo     = errors.New("puzzle repository cannot be nil")
	ErrNilPlayerRepo     = errors.New("player repository cannot be nil")
	ErrNilGameService    = errors.New("game service cannot be nil")
	ErrNilClock          = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator  = errors.New("UUID generator cannot be nil")
)

// service implements the Service interface
type service struct {
	duelRepo    duelRepo.Repository
	puzzleRepo  puzzleRepo.Repository
	playerRepo  playerRepo.Repository
	gameService game.Service
	clock       clock.Clock
	uuid        uuid.UUID
}

// New creates a new duel service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DuelRepo == nil {
		return nil, ErrNilDuelRepo
	}
	if cfg.PuzzleRepo == nil {
		return nil, ErrNilPuzzleRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		duelRepo:    cfg.DuelRepo,
		puzzleRepo:  cfg.PuzzleRepo,
		playerRepo:  cfg.PlayerRepo,
		gameService: cfg.GameService,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error) {
	if input.ChallengerID == input.OpponentID {
		return nil, ErrSelfChallenge
	}
	if input.Wager < 0 {
		return nil, ErrNegativeWager
	}

	if input.Wager > 0 {
		for _, playerID := range []string{input.ChallengerID, input.OpponentID} {
			player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
				PlayerID: playerID,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
			}
			// balances may not go negative, and settlement must never
			// fail the duel, so the check happens here
			if player.HintCoins < input.Wager {
				return nil, fmt.Errorf("%w: %s has %d, wager is %d",
					ErrInsufficientCoins, player.Name, player.HintCoins, input.Wager)
			}
		}
	}

	puzzleID, err := s.pickDuelPuzzle(ctx)
	if err != nil {
		return nil, err
	}

	duel := &models.Duel{
		ID:           s.uuid.NewUUID(),
		ChallengerID: input.ChallengerID,
		OpponentID:   input.OpponentID,
		PuzzleID:     puzzleID,
		Wager:        input.Wager,
		Status:       models.DuelStatusPending,
		CreatedAt:    s.clock.Now(),
	}

	err = s.duelRepo.CreateDuel(ctx, &duelRepo.CreateDuelInput{Duel: duel})
	if err != nil {
		return nil, err
	}

	return &ChallengeOutput{Duel: duel}, nil
}

func (s *service) Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error) {
	pending, err := s.duelRepo.GetPendingDuelByOpponent(ctx, &duelRepo.GetPendingDuelByOpponentInput{
		PlayerID: input.OpponentID,
	})
	if err != nil {
		if errors.Is(err, duelRepo.ErrDuelNotFound) {
			return nil, ErrNoPendingDuel
		}
		return nil, err
	}

	now := s.clock.Now()
	updated, err := s.duelRepo.UpdateDuel(ctx, &duelRepo.UpdateDuelInput{
		DuelID: pending.ID,
		Update: func(d *models.Duel) error {
			if d.Status != models.DuelStatusPending {
				return ErrNotPending
			}
			d.Status = models.DuelStatusActive
			d.StartedAt = now
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &AcceptOutput{Duel: updated}, nil
}

func (s *service) Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error) {
	pending, err := s.duelRepo.GetPendingDuelByOpponent(ctx, &duelRepo.GetPendingDuelByOpponentInput{
		PlayerID: input.OpponentID,
	})
	if err != nil {
		if errors.Is(err, duelRepo.ErrDuelNotFound) {
			return nil, ErrNoPendingDuel
		}
		return nil, err
	}

	updated, err := s.duelRepo.UpdateDuel(ctx, &duelRepo.UpdateDuelInput{
		DuelID: pending.ID,
		Update: func(d *models.Duel) error {
			if d.Status != models.DuelStatusPending {
				return ErrNotPending
			}
			d.Status = models.DuelStatusDeclined
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &DeclineOutput{Duel: updated}, nil
}

func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	pending, err := s.duelRepo.GetPendingDuelByChallenger(ctx, &duelRepo.GetPendingDuelByChallengerInput{
		PlayerID: input.ChallengerID,
	})
	if err != nil {
		if errors.Is(err, duelRepo.ErrDuelNotFound) {
			return nil, ErrNoPendingDuel
		}
		return nil, err
	}

	updated, err := s.duelRepo.UpdateDuel(ctx, &duelRepo.UpdateDuelInput{
		DuelID: pending.ID,
		Update: func(d *models.Duel) error {
			if d.Status != models.DuelStatusPending {
				return ErrNotPending
			}
			d.Status = models.DuelStatusCancelled
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &CancelOutput{Duel: updated}, nil
}

func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	active, err := s.duelRepo.GetActiveDuelByPlayer(ctx, &duelRepo.GetActiveDuelByPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, duelRepo.ErrDuelNotFound) {
			return nil, ErrNoActiveDuel
		}
		return nil, err
	}

	isChallenger := active.ChallengerID == input.PlayerID
	if isChallenger && active.ChallengerSolvedAt != nil {
		return nil, ErrSideAlreadySolved
	}
	if !isChallenger && active.OpponentSolvedAt != nil {
		return nil, ErrSideAlreadySolved
	}

	puzzle, err := s.puzzleRepo.GetPuzzle(ctx, &puzzleRepo.GetPuzzleInput{
		PuzzleID: active.PuzzleID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load duel puzzle: %w", err)
	}

	verdict, err := s.gameService.CheckAnswer(ctx, &game.CheckAnswerInput{
		Answer: puzzle.Answer,
		Text:   input.Text,
	})
	if err != nil {
		return nil, err
	}

	out := &SubmitGuessOutput{
		IsCorrect:    verdict.IsCorrect,
		Explanation:  verdict.Explanation,
		MissingWords: verdict.MissingWords,
		Duel:         active,
	}
	if !verdict.IsCorrect {
		return out, nil
	}

	solvedAt := s.clock.Now()

	// completedHere is written on every run of the update closure, so
	// after a transaction retry it reflects only the final run.
	completedHere := false
	updated, err := s.duelRepo.UpdateDuel(ctx, &duelRepo.UpdateDuelInput{
		DuelID: active.ID,
		Update: func(d *models.Duel) error {
			completedHere = false
			if d.Status == models.DuelStatusCompleted {
				// the other side completed the race first; keep the
				// recorded outcome untouched
				return nil
			}
			if d.Status != models.DuelStatusActive {
				return ErrNotActive
			}

			if isChallenger {
				if d.ChallengerSolvedAt == nil {
					t := solvedAt
					d.ChallengerSolvedAt = &t
				}
			} else {
				if d.OpponentSolvedAt == nil {
					t := solvedAt
					d.OpponentSolvedAt = &t
				}
			}

			if d.ChallengerSolvedAt != nil && d.OpponentSolvedAt != nil {
				d.Status = models.DuelStatusCompleted
				d.CompletedAt = solvedAt
				if d.OpponentSolvedAt.Before(*d.ChallengerSolvedAt) {
					d.WinnerID = d.OpponentID
				} else {
					d.WinnerID = d.ChallengerID
				}
				completedHere = true
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	out.Duel = updated
	out.Completed = updated.Status == models.DuelStatusCompleted
	out.WinnerID = updated.WinnerID
	out.WaitingForOpponent = !out.Completed

	if completedHere {
		out.CoinsTransferred = s.settleWager(ctx, updated)
	}

	return out, nil
}

func (s *service) GetDuel(ctx context.Context, input *GetDuelInput) (*GetDuelOutput, error) {
	duel, err := s.duelRepo.GetDuel(ctx, &duelRepo.GetDuelInput{DuelID: input.DuelID})
	if err != nil {
		return nil, err
	}
	return &GetDuelOutput{Duel: duel}, nil
}

func (s *service) ExpireStale(ctx context.Context, input *ExpireStaleInput) (*ExpireStaleOutput, error) {
	maxAge := input.MaxAge
	if maxAge == 0 {
		maxAge = DefaultMaxDuelAge
	}
	cutoff := s.clock.Now().Add(-maxAge)

	list, err := s.duelRepo.ListActiveDuels(ctx, &duelRepo.ListActiveDuelsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active duels: %w", err)
	}

	out := &ExpireStaleOutput{}
	for _, stale := range list.Duels {
		if stale.StartedAt.After(cutoff) {
			continue
		}

		completedHere := false
		updated, err := s.duelRepo.UpdateDuel(ctx, &duelRepo.UpdateDuelInput{
			DuelID: stale.ID,
			Update: func(d *models.Duel) error {
				completedHere = false
				if d.Status != models.DuelStatusActive {
					return ErrNotActive
				}

				d.CompletedAt = s.clock.Now()
				switch {
				case d.ChallengerSolvedAt != nil:
					d.Status = models.DuelStatusCompleted
					d.WinnerID = d.ChallengerID
					completedHere = true
				case d.OpponentSolvedAt != nil:
					d.Status = models.DuelStatusCompleted
					d.WinnerID = d.OpponentID
					completedHere = true
				default:
					d.Status = models.DuelStatusCancelled
				}
				return nil
			},
		})
		if err != nil {
			if errors.Is(err, ErrNotActive) {
				// resolved by a racing guess since the listing
				continue
			}
			log.Printf("failed to expire duel %s: %v", stale.ID, err)
			continue
		}

		if completedHere {
			out.Completed++
			s.settleWager(ctx, updated)
		} else {
			out.Cancelled++
		}
	}

	return out, nil
}

// settleWager transfers the stake to the recorded winner. Returns the
// amount moved, zero when the transfer failed or nothing was at stake.
func (s *service) settleWager(ctx context.Context, duel *models.Duel) int {
	if duel.Wager <= 0 {
		return 0
	}

	loserID := duel.ChallengerID
	if duel.WinnerID == duel.ChallengerID {
		loserID = duel.OpponentID
	}
	err := s.playerRepo.TransferCoins(ctx, &playerRepo.TransferCoinsInput{
		FromPlayerID: loserID,
		ToPlayerID:   duel.WinnerID,
		Amount:       duel.Wager,
	})
	if err != nil {
		// the recorded winner stands regardless; settlement never
		// fails the duel
		log.Printf("failed to settle duel %s wager: %v", duel.ID, err)
		return 0
	}
	return duel.Wager
}

// pickDuelPuzzle selects uniformly at random from all puzzles except
// the currently active weekly one, so a duel can never leak the live
// answer.
func (s *service) pickDuelPuzzle(ctx context.Context) (string, error) {
	all, err := s.puzzleRepo.ListPuzzles(ctx, &puzzleRepo.ListPuzzlesInput{})
	if err != nil {
		return "", fmt.Errorf("failed to list puzzles: %w", err)
	}

	activeID := ""
	active, err := s.puzzleRepo.GetActivePuzzle(ctx, &puzzleRepo.GetActivePuzzleInput{})
	if err != nil && !errors.Is(err, puzzleRepo.ErrNoActivePuzzle) {
		return "", fmt.Errorf("failed to load active puzzle: %w", err)
	}
	if active != nil {
		activeID = active.ID
	}

	pool := make([]string, 0, len(all.Puzzles))
	for _, p := range all.Puzzles {
		if p.ID != activeID {
			pool = append(pool, p.ID)
		}
	}
	if len(pool) == 0 {
		return "", ErrNoPuzzleAvailable
	}

	return pool[rand.Intn(len(pool))], nil
}
