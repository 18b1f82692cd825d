package mood

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	"github.com/phrazzle/phrazzle/internal/models"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
)

// streakGapTolerance absorbs week-boundary jitter: consecutive solved
// week-starts may be up to this far apart and still count as one streak.
const streakGapTolerance = 10 * 24 * time.Hour

// Define errors
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilGuessRepo     = errors.New("guess repository cannot be nil")
	ErrNilPuzzleRepo    = errors.New("puzzle repository cannot be nil")
	ErrNilPlayerRepo    = errors.New("player repository cannot be nil")
	ErrNilHistoryRepo   = errors.New("mood history repository cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
)

// service implements the Service interface
type service struct {
	guessRepo   guessRepo.Repository
	puzzleRepo  puzzleRepo.Repository
	playerRepo  playerRepo.Repository
	historyRepo moodHistoryRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
}

// New creates a new mood service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GuessRepo == nil {
		return nil, ErrNilGuessRepo
	}
	if cfg.PuzzleRepo == nil {
		return nil, ErrNilPuzzleRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		guessRepo:   cfg.GuessRepo,
		puzzleRepo:  cfg.PuzzleRepo,
		playerRepo:  cfg.PlayerRepo,
		historyRepo: cfg.HistoryRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

// TierFor is the canonical progression rule. Both gates must
// independently justify a tier; the binding, lower constraint wins.
func TierFor(streak, totalSolves int) int {
	tier := streak / 2
	if solveGate := totalSolves / 10; solveGate < tier {
		tier = solveGate
	}

	if tier < models.MinMoodTier {
		return models.MinMoodTier
	}
	if tier > models.MaxMoodTier {
		return models.MaxMoodTier
	}
	return tier
}

// streakBreakFloor is the coarser, total-solves-only banding used on a
// streak break: veterans never fall all the way back to tier 0.
func streakBreakFloor(totalSolves int) int {
	switch {
	case totalSolves <= 5:
		return 0
	case totalSolves <= 15:
		return 1
	default:
		return 2
	}
}

// GetStreak derives the current consecutive-week solve streak from the
// guess log joined to puzzle week-start dates.
func (s *service) GetStreak(ctx context.Context, input *GetStreakInput) (*GetStreakOutput, error) {
	streak, err := s.currentStreak(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetStreakOutput{Streak: streak}, nil
}

func (s *service) currentStreak(ctx context.Context, playerID string) (int, error) {
	puzzleIDs, err := s.guessRepo.GetSolvedPuzzleIDs(ctx, &guessRepo.GetSolvedPuzzleIDsInput{
		PlayerID: playerID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get solved puzzles: %w", err)
	}

	if len(puzzleIDs) == 0 {
		return 0, nil
	}

	weekStarts := make([]time.Time, 0, len(puzzleIDs))
	for _, puzzleID := range puzzleIDs {
		puzzle, err := s.puzzleRepo.GetPuzzle(ctx, &puzzleRepo.GetPuzzleInput{
			PuzzleID: puzzleID,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to get puzzle %s: %w", puzzleID, err)
		}
		weekStarts = append(weekStarts, puzzle.WeekStart)
	}

	// One solve per week counts once
	weekStarts = lo.UniqBy(weekStarts, func(t time.Time) int64 {
		return t.Unix()
	})

	// Most recent week first
	sort.Slice(weekStarts, func(i, j int) bool {
		return weekStarts[i].After(weekStarts[j])
	})

	streak := 1
	for i := 1; i < len(weekStarts); i++ {
		if weekStarts[i-1].Sub(weekStarts[i]) > streakGapTolerance {
			break
		}
		streak++
	}

	return streak, nil
}

// UpdateAfterSolve recomputes streak, total solves, best streak and
// tier from the guess log, persists any change and records the
// transition in the audit trail.
func (s *service) UpdateAfterSolve(ctx context.Context, input *UpdateAfterSolveInput) (*UpdateAfterSolveOutput, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	streak, err := s.currentStreak(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	totalSolves, err := s.guessRepo.CountSolves(ctx, &guessRepo.CountSolvesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count solves: %w", err)
	}

	dirty := false
	if streak > player.BestStreak {
		player.BestStreak = streak
		dirty = true
	}

	oldTier := player.MoodTier
	newTier := TierFor(streak, totalSolves)

	out := &UpdateAfterSolveOutput{
		TierChanged: newTier != oldTier,
		OldTier:     oldTier,
		NewTier:     newTier,
		Streak:      streak,
		TotalSolves: totalSolves,
		BestStreak:  player.BestStreak,
	}

	if newTier != oldTier {
		player.MoodTier = newTier
		dirty = true
	}

	if dirty {
		player.UpdatedAt = s.clock.Now()
		err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player})
		if err != nil {
			return nil, fmt.Errorf("failed to save player: %w", err)
		}
	}

	if newTier != oldTier {
		reason := models.MoodReasonSolve
		if newTier > oldTier {
			reason = models.MoodReasonTierUp
		}

		err = s.historyRepo.AddEntry(ctx, &moodHistoryRepo.AddEntryInput{
			Entry: &models.MoodHistoryEntry{
				ID:          s.uuid.NewUUID(),
				PlayerID:    input.PlayerID,
				OldTier:     oldTier,
				NewTier:     newTier,
				Reason:      reason,
				Streak:      streak,
				TotalSolves: totalSolves,
				CreatedAt:   s.clock.Now(),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to record mood transition: %w", err)
		}
	}

	return out, nil
}

// HandleStreakBreak demotes the tier toward a floor determined by
// historical solve volume. A history entry is written only when the
// tier actually moves.
func (s *service) HandleStreakBreak(ctx context.Context, input *HandleStreakBreakInput) (*HandleStreakBreakOutput, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	totalSolves, err := s.guessRepo.CountSolves(ctx, &guessRepo.CountSolvesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count solves: %w", err)
	}

	oldTier := player.MoodTier
	newTier := streakBreakFloor(totalSolves)

	// Demotion only; a player already at or below the floor is untouched
	if newTier >= oldTier {
		return &HandleStreakBreakOutput{
			TierChanged: false,
			OldTier:     oldTier,
			NewTier:     oldTier,
		}, nil
	}

	player.MoodTier = newTier
	player.UpdatedAt = s.clock.Now()
	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player})
	if err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	streak, err := s.currentStreak(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	err = s.historyRepo.AddEntry(ctx, &moodHistoryRepo.AddEntryInput{
		Entry: &models.MoodHistoryEntry{
			ID:          s.uuid.NewUUID(),
			PlayerID:    input.PlayerID,
			OldTier:     oldTier,
			NewTier:     newTier,
			Reason:      models.MoodReasonStreakBreak,
			Streak:      streak,
			TotalSolves: totalSolves,
			CreatedAt:   s.clock.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record mood transition: %w", err)
	}

	return &HandleStreakBreakOutput{
		TierChanged: true,
		OldTier:     oldTier,
		NewTier:     newTier,
	}, nil
}
