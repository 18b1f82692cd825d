package guess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	guessesKeyPrefix     = "guesses:"      // guesses:{player}:{puzzle} -> list of guess JSON
	guessCountKeyPrefix  = "guess_count:"  // guess_count:{player} -> lifetime guess counter
	solvedKeyPrefix      = "solved:"       // solved:{player} -> set of solved puzzle IDs
	solvesKeyPrefix      = "solves:"       // solves:{puzzle} -> zset of players by solve time
	solveGuessKeyPrefix  = "solve_guesses:" // solve_guesses:{player} -> hash puzzle -> guesses taken
	solveCountsKeyPrefix = "solve_counts:" // solve_counts:{puzzle} -> hash player -> guesses taken
)

// ErrNoSolves is returned when a puzzle has no correct guesses yet
var ErrNoSolves = errors.New("puzzle has no solves")

// Config holds configuration for the Redis guess repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guess repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func guessesKey(playerID, puzzleID string) string {
	return guessesKeyPrefix + playerID + ":" + puzzleID
}

// AddGuess appends a guess to the player's log for the puzzle. Correct
// guesses also update the solve indexes that streaks, stats and the
// weekly leaderboard are derived from.
func (r *redisRepository) AddGuess(ctx context.Context, input *AddGuessInput) error {
	if input == nil || input.Guess == nil {
		return errors.New("input and guess cannot be nil")
	}

	g := input.Guess
	guessJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal guess: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.RPush(ctx, guessesKey(g.PlayerID, g.PuzzleID), guessJSON)
	pipe.Incr(ctx, guessCountKeyPrefix+g.PlayerID)

	if g.IsCorrect {
		pipe.SAdd(ctx, solvedKeyPrefix+g.PlayerID, g.PuzzleID)
		pipe.ZAdd(ctx, solvesKeyPrefix+g.PuzzleID, redis.Z{
			Score:  float64(g.CreatedAt.UnixNano()),
			Member: g.PlayerID,
		})
		pipe.HSet(ctx, solveGuessKeyPrefix+g.PlayerID, g.PuzzleID, g.GuessNumber)
		pipe.HSet(ctx, solveCountsKeyPrefix+g.PuzzleID, g.PlayerID, g.GuessNumber)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add guess: %w", err)
	}

	return nil
}

// GetGuesses retrieves all of a player's guesses for a puzzle, oldest first
func (r *redisRepository) GetGuesses(ctx context.Context, input *GetGuessesInput) (*GetGuessesOutput, error) {
	if input == nil || input.PlayerID == "" || input.PuzzleID == "" {
		return nil, errors.New("input, player ID and puzzle ID cannot be empty")
	}

	entries, err := r.client.LRange(ctx, guessesKey(input.PlayerID, input.PuzzleID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guesses: %w", err)
	}

	guesses := make([]*models.Guess, 0, len(entries))
	for _, entry := range entries {
		var g models.Guess
		if err := json.Unmarshal([]byte(entry), &g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal guess: %w", err)
		}
		guesses = append(guesses, &g)
	}

	return &GetGuessesOutput{Guesses: guesses}, nil
}

// CountGuesses returns how many guesses a player has made for a puzzle
func (r *redisRepository) CountGuesses(ctx context.Context, input *CountGuessesInput) (int, error) {
	if input == nil || input.PlayerID == "" || input.PuzzleID == "" {
		return 0, errors.New("input, player ID and puzzle ID cannot be empty")
	}

	count, err := r.client.LLen(ctx, guessesKey(input.PlayerID, input.PuzzleID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count guesses: %w", err)
	}

	return int(count), nil
}

// CountAllGuesses returns a player's lifetime guess count
func (r *redisRepository) CountAllGuesses(ctx context.Context, input *CountAllGuessesInput) (int, error) {
	if input == nil || input.PlayerID == "" {
		return 0, errors.New("input and player ID cannot be empty")
	}

	count, err := r.client.Get(ctx, guessCountKeyPrefix+input.PlayerID).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count all guesses: %w", err)
	}

	return count, nil
}

// HasSolved reports whether a player has a correct guess for a puzzle
func (r *redisRepository) HasSolved(ctx context.Context, input *HasSolvedInput) (bool, error) {
	if input == nil || input.PlayerID == "" || input.PuzzleID == "" {
		return false, errors.New("input, player ID and puzzle ID cannot be empty")
	}

	solved, err := r.client.SIsMember(ctx, solvedKeyPrefix+input.PlayerID, input.PuzzleID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check solved set: %w", err)
	}

	return solved, nil
}

// GetSolvedPuzzleIDs returns the distinct puzzles a player has solved
func (r *redisRepository) GetSolvedPuzzleIDs(ctx context.Context, input *GetSolvedPuzzleIDsInput) ([]string, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	puzzleIDs, err := r.client.SMembers(ctx, solvedKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get solved puzzles: %w", err)
	}

	return puzzleIDs, nil
}

// CountSolves returns a player's distinct solved-puzzle count
func (r *redisRepository) CountSolves(ctx context.Context, input *CountSolvesInput) (int, error) {
	if input == nil || input.PlayerID == "" {
		return 0, errors.New("input and player ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, solvedKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}

	return int(count), nil
}

// GetSolveGuessCounts returns guesses-taken per solved puzzle for a player
func (r *redisRepository) GetSolveGuessCounts(ctx context.Context, input *GetSolveGuessCountsInput) (map[string]int, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, solveGuessKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get solve guess counts: %w", err)
	}

	counts := make(map[string]int, len(raw))
	for puzzleID, value := range raw {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse guess count for puzzle %s: %w", puzzleID, err)
		}
		counts[puzzleID] = count
	}

	return counts, nil
}

// GetPuzzleSolves returns a puzzle's solves ordered by solve time, earliest first
func (r *redisRepository) GetPuzzleSolves(ctx context.Context, input *GetPuzzleSolvesInput) ([]*models.Solve, error) {
	if input == nil || input.PuzzleID == "" {
		return nil, errors.New("input and puzzle ID cannot be empty")
	}

	entries, err := r.client.ZRangeWithScores(ctx, solvesKeyPrefix+input.PuzzleID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle solves: %w", err)
	}

	counts, err := r.client.HGetAll(ctx, solveCountsKeyPrefix+input.PuzzleID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get solve counts: %w", err)
	}

	solves := make([]*models.Solve, 0, len(entries))
	for _, entry := range entries {
		playerID, ok := entry.Member.(string)
		if !ok {
			continue
		}

		guessCount := 0
		if raw, ok := counts[playerID]; ok {
			if parsed, err := strconv.Atoi(raw); err == nil {
				guessCount = parsed
			}
		}

		solves = append(solves, &models.Solve{
			PlayerID:   playerID,
			SolvedAt:   time.Unix(0, int64(entry.Score)),
			GuessCount: guessCount,
		})
	}

	return solves, nil
}

// GetFirstSolver returns the player who solved a puzzle first
func (r *redisRepository) GetFirstSolver(ctx context.Context, input *GetFirstSolverInput) (string, error) {
	if input == nil || input.PuzzleID == "" {
		return "", errors.New("input and puzzle ID cannot be empty")
	}

	first, err := r.client.ZRange(ctx, solvesKeyPrefix+input.PuzzleID, 0, 0).Result()
	if err != nil {
		return "", fmt.Errorf("failed to get first solver: %w", err)
	}

	if len(first) == 0 {
		return "", ErrNoSolves
	}

	return first[0], nil
}
