package achievement

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzle/phrazzle/internal/models"
	achievementRepo "github.com/phrazzle/phrazzle/internal/repositories/achievement"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	moodHistoryRepo "github.com/phrazzle/phrazzle/internal/repositories/moodhistory"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/mood"
)

// Define errors
var (
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilAchievementRepo = errors.New("achievement repository cannot be nil")
	ErrNilGuessRepo       = errors.New("guess repository cannot be nil")
	ErrNilPuzzleRepo      = errors.New("puzzle repository cannot be nil")
	ErrNilHistoryRepo     = errors.New("mood history repository cannot be nil")
	ErrNilMoodService     = errors.New("mood service cannot be nil")
)

// service implements the Service interface
type service struct {
	achievementRepo achievementRepo.Repository
	guessRepo       guessRepo.Repository
	puzzleRepo      puzzleRepo.Repository
	historyRepo     moodHistoryRepo.Repository
	moodService     mood.Service
}

// New creates a new achievement service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.AchievementRepo == nil {
		return nil, ErrNilAchievementRepo
	}
	if cfg.GuessRepo == nil {
		return nil, ErrNilGuessRepo
	}
	if cfg.PuzzleRepo == nil {
		return nil, ErrNilPuzzleRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.MoodService == nil {
		return nil, ErrNilMoodService
	}

	return &service{
		achievementRepo: cfg.AchievementRepo,
		guessRepo:       cfg.GuessRepo,
		puzzleRepo:      cfg.PuzzleRepo,
		historyRepo:     cfg.HistoryRepo,
		moodService:     cfg.MoodService,
	}, nil
}

func (s *service) CheckAndAward(ctx context.Context, input *CheckAndAwardInput) (*CheckAndAwardOutput, error) {
	stats, err := s.buildStats(ctx, input)
	if err != nil {
		return nil, err
	}

	out := &CheckAndAwardOutput{}
	for i := range catalog {
		r := &catalog[i]
		if !r.unlocks(stats) {
			continue
		}

		unlock, err := s.achievementRepo.TryUnlock(ctx, &achievementRepo.TryUnlockInput{
			PlayerID:       input.PlayerID,
			AchievementKey: r.achievement.Key,
			UnlockedAt:     input.SolvedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to unlock %s: %w", r.achievement.Key, err)
		}
		if unlock.Unlocked {
			out.NewlyUnlocked = append(out.NewlyUnlocked, &r.achievement)
		}
	}

	return out, nil
}

func (s *service) GetUnlocked(ctx context.Context, input *GetUnlockedInput) (*GetUnlockedOutput, error) {
	unlocked, err := s.achievementRepo.GetUnlocked(ctx, &achievementRepo.GetUnlockedInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	out := &GetUnlockedOutput{}
	for _, u := range unlocked.Unlocked {
		entry, ok := catalogByKey[u.AchievementKey]
		if !ok {
			// a key retired from the catalog; skip rather than fail
			continue
		}
		out.Unlocked = append(out.Unlocked, &UnlockedDetail{
			Achievement: entry,
			UnlockedAt:  u.UnlockedAt,
		})
	}

	return out, nil
}

func (s *service) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	unlocked, err := s.achievementRepo.GetUnlocked(ctx, &achievementRepo.GetUnlockedInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	unlockedByCategory := make(map[models.AchievementCategory]int)
	for _, u := range unlocked.Unlocked {
		if entry, ok := catalogByKey[u.AchievementKey]; ok {
			unlockedByCategory[entry.Category]++
		}
	}

	totalByCategory := make(map[models.AchievementCategory]int)
	var order []models.AchievementCategory
	for i := range catalog {
		cat := catalog[i].achievement.Category
		if totalByCategory[cat] == 0 {
			order = append(order, cat)
		}
		totalByCategory[cat]++
	}

	out := &GetProgressOutput{Total: len(catalog)}
	for _, cat := range order {
		out.Progress = append(out.Progress, &models.AchievementProgress{
			Category: cat,
			Unlocked: unlockedByCategory[cat],
			Total:    totalByCategory[cat],
		})
		out.Unlocked += unlockedByCategory[cat]
	}

	return out, nil
}

func (s *service) Catalog() []*models.Achievement {
	entries := make([]*models.Achievement, len(catalog))
	for i := range catalog {
		entries[i] = &catalog[i].achievement
	}
	return entries
}

// buildStats recomputes the full snapshot from the guess log and the
// mood audit trail. The triggering solve must already be persisted.
func (s *service) buildStats(ctx context.Context, input *CheckAndAwardInput) (*playerStats, error) {
	stats := &playerStats{
		SolvedAt:    input.SolvedAt,
		GuessNumber: input.GuessNumber,
	}

	totalSolves, err := s.guessRepo.CountSolves(ctx, &guessRepo.CountSolvesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count solves: %w", err)
	}
	stats.TotalSolves = totalSolves

	totalGuesses, err := s.guessRepo.CountAllGuesses(ctx, &guessRepo.CountAllGuessesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count guesses: %w", err)
	}
	stats.TotalGuesses = totalGuesses

	solveCounts, err := s.guessRepo.GetSolveGuessCounts(ctx, &guessRepo.GetSolveGuessCountsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get solve guess counts: %w", err)
	}

	if len(solveCounts) > 0 {
		sum := 0
		for _, n := range solveCounts {
			sum += n
			if n <= 3 {
				stats.QuickSolves++
			}
		}
		stats.AvgGuesses = float64(sum) / float64(len(solveCounts))
	}

	for puzzleID := range solveCounts {
		first, err := s.guessRepo.GetFirstSolver(ctx, &guessRepo.GetFirstSolverInput{
			PuzzleID: puzzleID,
		})
		if err != nil {
			if errors.Is(err, guessRepo.ErrNoSolves) {
				continue
			}
			return nil, fmt.Errorf("failed to get first solver: %w", err)
		}
		if first == input.PlayerID {
			stats.FirstPlaces++
		}
	}

	streak, err := s.moodService.GetStreak(ctx, &mood.GetStreakInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}
	stats.Streak = streak.Streak

	puzzle, err := s.puzzleRepo.GetPuzzle(ctx, &puzzleRepo.GetPuzzleInput{
		PuzzleID: input.PuzzleID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}
	stats.SolveLatency = input.SolvedAt.Sub(puzzle.WeekStart)

	entries, err := s.historyRepo.GetEntries(ctx, &moodHistoryRepo.GetEntriesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get mood history: %w", err)
	}
	for _, e := range entries.Entries {
		if e.Reason == models.MoodReasonStreakBreak && e.Streak > stats.LostStreak {
			stats.LostStreak = e.Streak
		}
	}

	return stats, nil
}
