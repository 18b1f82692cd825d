package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/phrazzle/phrazzle/internal/models"
	guessRepo "github.com/phrazzle/phrazzle/internal/repositories/guess"
	leaderboardRepo "github.com/phrazzle/phrazzle/internal/repositories/leaderboard"
	playerRepo "github.com/phrazzle/phrazzle/internal/repositories/player"
	puzzleRepo "github.com/phrazzle/phrazzle/internal/repositories/puzzle"
)

// Define errors
var (
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilLeaderboardRepo = errors.New("leaderboard repository cannot be nil")
	ErrNilGuessRepo       = errors.New("guess repository cannot be nil")
	ErrNilPuzzleRepo      = errors.New("puzzle repository cannot be nil")
	ErrNilPlayerRepo      = errors.New("player repository cannot be nil")
)

// service implements the Service interface
type service struct {
	leaderboardRepo leaderboardRepo.Repository
	guessRepo       guessRepo.Repository
	puzzleRepo      puzzleRepo.Repository
	playerRepo      playerRepo.Repository
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
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

	return &service{
		leaderboardRepo: cfg.LeaderboardRepo,
		guessRepo:       cfg.GuessRepo,
		puzzleRepo:      cfg.PuzzleRepo,
		playerRepo:      cfg.PlayerRepo,
	}, nil
}

func (s *service) GetWeekly(ctx context.Context, input *GetWeeklyInput) (*GetWeeklyOutput, error) {
	snapshot, err := s.leaderboardRepo.GetWeeklySnapshot(ctx, &leaderboardRepo.GetWeeklySnapshotInput{
		PuzzleID: input.PuzzleID,
	})
	if err == nil {
		return &GetWeeklyOutput{Entries: snapshot.Entries, Frozen: true}, nil
	}
	if !errors.Is(err, leaderboardRepo.ErrSnapshotNotFound) {
		return nil, err
	}

	entries, err := s.computeWeekly(ctx, input.PuzzleID)
	if err != nil {
		return nil, err
	}

	return &GetWeeklyOutput{Entries: entries}, nil
}

func (s *service) PersistWeekly(ctx context.Context, input *PersistWeeklyInput) (*PersistWeeklyOutput, error) {
	entries, err := s.computeWeekly(ctx, input.PuzzleID)
	if err != nil {
		return nil, err
	}

	saved, err := s.leaderboardRepo.SaveWeeklySnapshot(ctx, &leaderboardRepo.SaveWeeklySnapshotInput{
		PuzzleID: input.PuzzleID,
		Entries:  entries,
	})
	if err != nil {
		return nil, err
	}

	if saved.AlreadyPersisted {
		// return what is actually on record, not the recomputed view
		snapshot, err := s.leaderboardRepo.GetWeeklySnapshot(ctx, &leaderboardRepo.GetWeeklySnapshotInput{
			PuzzleID: input.PuzzleID,
		})
		if err != nil {
			return nil, err
		}
		return &PersistWeeklyOutput{AlreadyPersisted: true, Entries: snapshot.Entries}, nil
	}

	return &PersistWeeklyOutput{Entries: entries}, nil
}

func (s *service) GetAllTime(ctx context.Context, input *GetAllTimeInput) (*GetAllTimeOutput, error) {
	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	entries := make([]*models.AllTimeLeaderboardEntry, 0, len(players.Players))
	for _, p := range players.Players {
		solveCounts, err := s.guessRepo.GetSolveGuessCounts(ctx, &guessRepo.GetSolveGuessCountsInput{
			PlayerID: p.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get solve guess counts: %w", err)
		}
		if len(solveCounts) == 0 {
			continue
		}

		sum := 0
		for _, n := range solveCounts {
			sum += n
		}

		entries = append(entries, &models.AllTimeLeaderboardEntry{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			TotalSolves: len(solveCounts),
			AvgGuesses:  float64(sum) / float64(len(solveCounts)),
			BestStreak:  p.BestStreak,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalSolves != entries[j].TotalSolves {
			return entries[i].TotalSolves > entries[j].TotalSolves
		}
		if entries[i].AvgGuesses != entries[j].AvgGuesses {
			return entries[i].AvgGuesses < entries[j].AvgGuesses
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	for i, e := range entries {
		e.Rank = i + 1
	}

	return &GetAllTimeOutput{Entries: entries}, nil
}

// computeWeekly builds the live ranking for a puzzle from the solve
// index: earliest correct guess first, rank by position, no shared
// ranks.
func (s *service) computeWeekly(ctx context.Context, puzzleID string) ([]*models.WeeklyLeaderboardEntry, error) {
	puzzle, err := s.puzzleRepo.GetPuzzle(ctx, &puzzleRepo.GetPuzzleInput{
		PuzzleID: puzzleID,
	})
	if err != nil {
		return nil, err
	}

	solves, err := s.guessRepo.GetPuzzleSolves(ctx, &guessRepo.GetPuzzleSolvesInput{
		PuzzleID: puzzleID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle solves: %w", err)
	}

	entries := make([]*models.WeeklyLeaderboardEntry, 0, len(solves))
	for i, solve := range solves {
		name := solve.PlayerID
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: solve.PlayerID,
		})
		if err == nil {
			name = player.Name
		} else if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to load player %s: %w", solve.PlayerID, err)
		}

		entries = append(entries, &models.WeeklyLeaderboardEntry{
			PuzzleID:   puzzleID,
			WeekStart:  puzzle.WeekStart,
			PlayerID:   solve.PlayerID,
			PlayerName: name,
			SolvedAt:   solve.SolvedAt,
			GuessCount: solve.GuessCount,
			Rank:       i + 1,
		})
	}

	return entries, nil
}
