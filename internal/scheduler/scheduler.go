package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/phrazzle/phrazzle/internal/common/clock"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/duel"
	"github.com/phrazzle/phrazzle/internal/services/game"
	"github.com/phrazzle/phrazzle/internal/services/leaderboard"
	"github.com/phrazzle/phrazzle/internal/services/mood"
)

var (
	ErrNilConfig             = errors.New("config cannot be nil")
	ErrNilGameService        = errors.New("game service cannot be nil")
	ErrNilDuelService        = errors.New("duel service cannot be nil")
	ErrNilLeaderboardService = errors.New("leaderboard service cannot be nil")
	ErrNilMoodService        = errors.New("mood service cannot be nil")
	ErrNilPlayerRepo         = errors.New("player repository cannot be nil")
	ErrNilPuzzleRepo         = errors.New("puzzle repository cannot be nil")
	ErrNilGuessRepo          = errors.New("guess repository cannot be nil")
	ErrNilClock              = errors.New("clock cannot be nil")
)

const defaultInterval = time.Hour

// Config holds the dependencies for the scheduler
type Config struct {
	GameService        game.Service
	DuelService        duel.Service
	LeaderboardService leaderboard.Service
	MoodService        mood.Service
	PlayerRepo         playerRepo.Repository
	PuzzleRepo         puzzleRepo.Repository
	GuessRepo          guessRepo.Repository
	Clock              clock.Clock

	// Interval is how often the week boundary is checked. Zero means
	// defaultInterval.
	Interval time.Duration
}

// Scheduler drives the weekly cadence: when the active puzzle's week
// ends it freezes the leaderboard, demotes players who sat the week
// out, and rotates to the next puzzle.
type Scheduler struct {
	gameService        game.Service
	duelService        duel.Service
	leaderboardService leaderboard.Service
	moodService        mood.Service
	playerRepo         playerRepo.Repository
	puzzleRepo         puzzleRepo.Repository
	guessRepo          guessRepo.Repository
	clock              clock.Clock
	interval           time.Duration
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.DuelService == nil {
		return nil, ErrNilDuelService
	}
	if cfg.LeaderboardService == nil {
		return nil, ErrNilLeaderboardService
	}
	if cfg.MoodService == nil {
		return nil, ErrNilMoodService
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.PuzzleRepo == nil {
		return nil, ErrNilPuzzleRepo
	}
	if cfg.GuessRepo == nil {
		return nil, ErrNilGuessRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = defaultInterval
	}

	return &Scheduler{
		gameService:        cfg.GameService,
		duelService:        cfg.DuelService,
		leaderboardService: cfg.LeaderboardService,
		moodService:        cfg.MoodService,
		playerRepo:         cfg.PlayerRepo,
		puzzleRepo:         cfg.PuzzleRepo,
		guessRepo:          cfg.GuessRepo,
		clock:              cfg.Clock,
		interval:           interval,
	}, nil
}

// Run ticks until the context is cancelled. One boundary check runs
// immediately so a restart never misses an already-ended week.
func (s *Scheduler) Run(ctx context.Context) {
	if err := s.Tick(ctx); err != nil {
		log.Printf("scheduler tick failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				log.Printf("scheduler tick failed: %v", err)
			}
		}
	}
}

// Tick expires stale duels and performs one week-boundary check
func (s *Scheduler) Tick(ctx context.Context) error {
	expired, err := s.duelService.ExpireStale(ctx, &duel.ExpireStaleInput{})
	if err != nil {
		log.Printf("failed to expire stale duels: %v", err)
	} else if expired.Completed+expired.Cancelled > 0 {
		log.Printf("expired stale duels: %d completed, %d cancelled", expired.Completed, expired.Cancelled)
	}

	active, err := s.puzzleRepo.GetActivePuzzle(ctx, &puzzleRepo.GetActivePuzzleInput{})
	if err != nil {
		if errors.Is(err, puzzleRepo.ErrNoActivePuzzle) {
			// A successor may have started since the last tick.
			_, rotateErr := s.gameService.RotatePuzzle(ctx, &game.RotatePuzzleInput{})
			return rotateErr
		}
		return fmt.Errorf("failed to load active puzzle: %w", err)
	}

	if s.clock.Now().Before(active.WeekEnd) {
		return nil
	}

	return s.endWeek(ctx, active.ID)
}

// endWeek freezes standings, applies streak breaks, and rotates. The
// snapshot is written before any demotion so the frozen board reflects
// the week exactly as it ended.
func (s *Scheduler) endWeek(ctx context.Context, puzzleID string) error {
	if _, err := s.leaderboardService.PersistWeekly(ctx, &leaderboard.PersistWeeklyInput{
		PuzzleID: puzzleID,
	}); err != nil {
		return fmt.Errorf("failed to persist weekly leaderboard: %w", err)
	}

	if err := s.applyStreakBreaks(ctx, puzzleID); err != nil {
		return err
	}

	if _, err := s.gameService.RotatePuzzle(ctx, &game.RotatePuzzleInput{}); err != nil {
		return fmt.Errorf("failed to rotate puzzle: %w", err)
	}

	return nil
}

func (s *Scheduler) applyStreakBreaks(ctx context.Context, puzzleID string) error {
	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}

	for _, p := range players.Players {
		solved, err := s.guessRepo.HasSolved(ctx, &guessRepo.HasSolvedInput{
			PlayerID: p.ID,
			PuzzleID: puzzleID,
		})
		if err != nil {
			log.Printf("failed to check solve for player %s: %v", p.ID, err)
			continue
		}
		if solved {
			continue
		}

		out, err := s.moodService.HandleStreakBreak(ctx, &mood.HandleStreakBreakInput{
			PlayerID: p.ID,
		})
		if err != nil {
			log.Printf("failed to apply streak break for player %s: %v", p.ID, err)
			continue
		}
		if out.TierChanged {
			log.Printf("streak break: player %s demoted from tier %d to %d", p.ID, out.OldTier, out.NewTier)
		}
	}

	return nil
}
