package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/phrazzle/phrazzle/internal/celebration"
	"github.com/phrazzle/phrazzle/internal/common/clock"
	"github.com/phrazzle/phrazzle/internal/common/uuid"
	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/phrazzle/phrazzle/internal/oracle"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
	"github.com/phrazzle/phrazzle/internal/services/achievement"
	"github.com/phrazzle/phrazzle/internal/services/mood"
	"github.com/phrazzle/phrazzle/internal/wordmatch"
)

// solveCoinReward is the hint coin grant for solving the weekly puzzle
const solveCoinReward = 5

// Define errors
var (
	ErrNoActivePuzzle        = errors.New("no active puzzle")
	ErrAlreadySolved         = errors.New("puzzle already solved by this player")
	ErrEmptyGuess            = errors.New("guess cannot be empty")
	ErrNilConfig             = errors.New("config cannot be nil")
	ErrNilGuessRepo          = errors.New("guess repository cannot be nil")
	ErrNilPuzzleRepo         = errors.New("puzzle repository cannot be nil")
	ErrNilPlayerRepo         = errors.New("player repository cannot be nil")
	ErrNilMoodService        = errors.New("mood service cannot be nil")
	ErrNilAchievementService = errors.New("achievement service cannot be nil")
	ErrNilMatcher            = errors.New("word matcher cannot be nil")
	ErrNilOracle             = errors.New("oracle cannot be nil")
	ErrNilCelebration        = errors.New("celebration provider cannot be nil")
	ErrNilClock              = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator      = errors.New("UUID generator cannot be nil")
)

// service implements the Service interface
type service struct {
	guessRepo          guessRepo.Repository
	puzzleRepo         puzzleRepo.Repository
	playerRepo         playerRepo.Repository
	moodService        mood.Service
	achievementService achievement.Service
	matcher            *wordmatch.Matcher
	oracle             oracle.Oracle
	celebration        celebration.Provider
	clock              clock.Clock
	uuid               uuid.UUID
}

// New creates a new game service
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
	if cfg.MoodService == nil {
		return nil, ErrNilMoodService
	}
	if cfg.AchievementService == nil {
		return nil, ErrNilAchievementService
	}
	if cfg.Matcher == nil {
		return nil, ErrNilMatcher
	}
	if cfg.Oracle == nil {
		return nil, ErrNilOracle
	}
	if cfg.Celebration == nil {
		return nil, ErrNilCelebration
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		guessRepo:          cfg.GuessRepo,
		puzzleRepo:         cfg.PuzzleRepo,
		playerRepo:         cfg.PlayerRepo,
		moodService:        cfg.MoodService,
		achievementService: cfg.AchievementService,
		matcher:            cfg.Matcher,
		oracle:             cfg.Oracle,
		celebration:        cfg.Celebration,
		clock:              cfg.Clock,
		uuid:               cfg.UUIDGenerator,
	}, nil
}

func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyGuess
	}

	puzzle, err := s.puzzleRepo.GetActivePuzzle(ctx, &puzzleRepo.GetActivePuzzleInput{})
	if err != nil {
		if errors.Is(err, puzzleRepo.ErrNoActivePuzzle) {
			return nil, ErrNoActivePuzzle
		}
		return nil, fmt.Errorf("failed to load active puzzle: %w", err)
	}

	solved, err := s.guessRepo.HasSolved(ctx, &guessRepo.HasSolvedInput{
		PlayerID: input.PlayerID,
		PuzzleID: puzzle.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check solve state: %w", err)
	}
	if solved {
		return nil, ErrAlreadySolved
	}

	priorGuesses, err := s.guessRepo.CountGuesses(ctx, &guessRepo.CountGuessesInput{
		PlayerID: input.PlayerID,
		PuzzleID: puzzle.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count prior guesses: %w", err)
	}
	guessNumber := priorGuesses + 1

	player, err := s.ensurePlayer(ctx, input.PlayerID, input.PlayerName)
	if err != nil {
		return nil, err
	}

	verdict, err := s.CheckAnswer(ctx, &CheckAnswerInput{
		Answer: puzzle.Answer,
		Text:   input.Text,
	})
	if err != nil {
		return nil, err
	}

	// The guess row records the tier at submission time, before any
	// mood update, and must be persisted before mood and achievement
	// derivation reads the log.
	now := s.clock.Now()
	err = s.guessRepo.AddGuess(ctx, &guessRepo.AddGuessInput{
		Guess: &models.Guess{
			ID:          s.uuid.NewUUID(),
			PlayerID:    input.PlayerID,
			PuzzleID:    puzzle.ID,
			Text:        input.Text,
			IsCorrect:   verdict.IsCorrect,
			GuessNumber: guessNumber,
			MoodTier:    player.MoodTier,
			CreatedAt:   now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist guess: %w", err)
	}

	out := &SubmitGuessOutput{
		IsCorrect:         verdict.IsCorrect,
		GuessNumber:       guessNumber,
		Explanation:       verdict.Explanation,
		MissingWords:      verdict.MissingWords,
		CorrectedSpelling: verdict.CorrectedSpelling,
		OldTier:           player.MoodTier,
		NewTier:           player.MoodTier,
	}
	if !verdict.IsCorrect {
		return out, nil
	}

	// The guess is on record; everything past this point decorates the
	// result and must not take the solve down with it.
	moodOut, err := s.moodService.UpdateAfterSolve(ctx, &mood.UpdateAfterSolveInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		log.Printf("failed to update mood for %s: %v", input.PlayerID, err)
	} else {
		out.TierChanged = moodOut.TierChanged
		out.OldTier = moodOut.OldTier
		out.NewTier = moodOut.NewTier
		out.Streak = moodOut.Streak
	}

	awards, err := s.achievementService.CheckAndAward(ctx, &achievement.CheckAndAwardInput{
		PlayerID:    input.PlayerID,
		PuzzleID:    puzzle.ID,
		GuessNumber: guessNumber,
		SolvedAt:    now,
	})
	if err != nil {
		log.Printf("failed to check achievements for %s: %v", input.PlayerID, err)
	} else {
		out.NewAchievements = awards.NewlyUnlocked
	}

	_, err = s.playerRepo.AdjustCoins(ctx, &playerRepo.AdjustCoinsInput{
		PlayerID: input.PlayerID,
		Delta:    solveCoinReward,
	})
	if err != nil {
		// the solve already stands; the grant is best-effort
		log.Printf("failed to grant solve coins to %s: %v", input.PlayerID, err)
	} else {
		out.CoinsAwarded = solveCoinReward
	}

	celebrationOut, err := s.celebration.FetchCelebration(ctx, &celebration.FetchCelebrationInput{
		Tier: out.NewTier,
	})
	if err != nil {
		log.Printf("failed to fetch celebration for tier %d: %v", out.NewTier, err)
		out.CelebrationURL = celebration.DefaultURL
	} else {
		out.CelebrationURL = celebrationOut.URL
	}

	return out, nil
}

func (s *service) CheckAnswer(ctx context.Context, input *CheckAnswerInput) (*CheckAnswerOutput, error) {
	missing := s.matcher.MissingWords(input.Answer, input.Text)
	if len(missing) > 0 {
		return &CheckAnswerOutput{
			IsCorrect:    false,
			Explanation:  fmt.Sprintf("missing required words: %s", strings.Join(missing, ", ")),
			MissingWords: missing,
		}, nil
	}

	verdict, err := s.oracle.Validate(ctx, &oracle.ValidateInput{
		Answer: input.Answer,
		Guess:  input.Text,
	})
	if err != nil {
		// degrade to the deterministic fallback rather than blocking
		// the player; no retries
		log.Printf("oracle unavailable, falling back to exact match: %v", err)
		return &CheckAnswerOutput{
			IsCorrect:   oracle.Match(input.Answer, input.Text),
			Explanation: "verified by exact match",
		}, nil
	}

	return &CheckAnswerOutput{
		IsCorrect:         verdict.IsCorrect,
		Explanation:       verdict.Explanation,
		CorrectedSpelling: verdict.CorrectedSpelling,
	}, nil
}

func (s *service) RotatePuzzle(ctx context.Context, input *RotatePuzzleInput) (*RotatePuzzleOutput, error) {
	now := s.clock.Now()

	active, err := s.puzzleRepo.GetActivePuzzle(ctx, &puzzleRepo.GetActivePuzzleInput{})
	if err != nil && !errors.Is(err, puzzleRepo.ErrNoActivePuzzle) {
		return nil, fmt.Errorf("failed to load active puzzle: %w", err)
	}
	if active != nil && !active.WeekStart.After(now) && active.WeekEnd.After(now) {
		return &RotatePuzzleOutput{Rotated: false, PuzzleID: active.ID}, nil
	}

	all, err := s.puzzleRepo.ListPuzzles(ctx, &puzzleRepo.ListPuzzlesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}

	for _, p := range all.Puzzles {
		if !p.WeekStart.After(now) && p.WeekEnd.After(now) {
			err = s.puzzleRepo.SetActivePuzzle(ctx, &puzzleRepo.SetActivePuzzleInput{PuzzleID: p.ID})
			if err != nil {
				return nil, fmt.Errorf("failed to activate puzzle: %w", err)
			}
			return &RotatePuzzleOutput{Rotated: true, PuzzleID: p.ID}, nil
		}
	}

	// no puzzle covers the current time; deactivate the expired one
	if active != nil {
		err = s.puzzleRepo.SetActivePuzzle(ctx, &puzzleRepo.SetActivePuzzleInput{PuzzleID: ""})
		if err != nil {
			return nil, fmt.Errorf("failed to deactivate puzzle: %w", err)
		}
		return &RotatePuzzleOutput{Rotated: true}, nil
	}

	return &RotatePuzzleOutput{Rotated: false}, nil
}

func (s *service) GetActivePuzzle(ctx context.Context, input *GetActivePuzzleInput) (*GetActivePuzzleOutput, error) {
	puzzle, err := s.puzzleRepo.GetActivePuzzle(ctx, &puzzleRepo.GetActivePuzzleInput{})
	if err != nil {
		if errors.Is(err, puzzleRepo.ErrNoActivePuzzle) {
			return nil, ErrNoActivePuzzle
		}
		return nil, err
	}
	return &GetActivePuzzleOutput{Puzzle: puzzle}, nil
}

func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	totalSolves, err := s.guessRepo.CountSolves(ctx, &guessRepo.CountSolvesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count solves: %w", err)
	}

	totalGuesses, err := s.guessRepo.CountAllGuesses(ctx, &guessRepo.CountAllGuessesInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count guesses: %w", err)
	}

	solveCounts, err := s.guessRepo.GetSolveGuessCounts(ctx, &guessRepo.GetSolveGuessCountsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get solve guess counts: %w", err)
	}

	avg := 0.0
	if len(solveCounts) > 0 {
		sum := 0
		for _, n := range solveCounts {
			sum += n
		}
		avg = float64(sum) / float64(len(solveCounts))
	}

	streak, err := s.moodService.GetStreak(ctx, &mood.GetStreakInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	return &GetPlayerStatsOutput{
		Player:       player,
		TotalSolves:  totalSolves,
		TotalGuesses: totalGuesses,
		AvgGuesses:   avg,
		Streak:       streak.Streak,
	}, nil
}

// ensurePlayer loads the player record, creating it on first
// interaction. Players are never deleted.
func (s *service) ensurePlayer(ctx context.Context, playerID, playerName string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	now := s.clock.Now()
	player = &models.Player{
		ID:        playerID,
		Name:      playerName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}
