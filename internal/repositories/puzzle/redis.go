package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	puzzleKeyPrefix = "puzzle:"
	puzzlesKey      = "puzzles"
	activePuzzleKey = "active_puzzle"
)

// ErrPuzzleNotFound is returned when a puzzle is not found
var ErrPuzzleNotFound = errors.New("puzzle not found")

// ErrNoActivePuzzle is returned when no puzzle is currently active
var ErrNoActivePuzzle = errors.New("no active puzzle")

// Config holds configuration for the Redis puzzle repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed puzzle repository
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

// SavePuzzle persists a puzzle to Redis
func (r *redisRepository) SavePuzzle(ctx context.Context, input *SavePuzzleInput) error {
	if input == nil || input.Puzzle == nil {
		return errors.New("input and puzzle cannot be nil")
	}

	puzzleJSON, err := json.Marshal(input.Puzzle)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, puzzleKeyPrefix+input.Puzzle.ID, puzzleJSON, 0)
	pipe.SAdd(ctx, puzzlesKey, input.Puzzle.ID)

	if input.Puzzle.Active {
		pipe.Set(ctx, activePuzzleKey, input.Puzzle.ID, 0)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save puzzle: %w", err)
	}

	return nil
}

// GetPuzzle retrieves a puzzle by ID from Redis
func (r *redisRepository) GetPuzzle(ctx context.Context, input *GetPuzzleInput) (*models.Puzzle, error) {
	if input == nil || input.PuzzleID == "" {
		return nil, errors.New("input and puzzle ID cannot be empty")
	}

	return r.getPuzzle(ctx, input.PuzzleID)
}

func (r *redisRepository) getPuzzle(ctx context.Context, puzzleID string) (*models.Puzzle, error) {
	puzzleJSON, err := r.client.Get(ctx, puzzleKeyPrefix+puzzleID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPuzzleNotFound
		}
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	var puzzle models.Puzzle
	if err := json.Unmarshal([]byte(puzzleJSON), &puzzle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle: %w", err)
	}

	return &puzzle, nil
}

// GetActivePuzzle retrieves the currently active weekly puzzle
func (r *redisRepository) GetActivePuzzle(ctx context.Context, input *GetActivePuzzleInput) (*models.Puzzle, error) {
	puzzleID, err := r.client.Get(ctx, activePuzzleKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoActivePuzzle
		}
		return nil, fmt.Errorf("failed to get active puzzle ID: %w", err)
	}

	puzzle, err := r.getPuzzle(ctx, puzzleID)
	if err != nil {
		if errors.Is(err, ErrPuzzleNotFound) {
			return nil, ErrNoActivePuzzle
		}
		return nil, err
	}

	return puzzle, nil
}

// SetActivePuzzle makes the given puzzle the active one, clearing the
// Active flag on the previously active puzzle. An empty puzzle ID just
// deactivates the current puzzle.
func (r *redisRepository) SetActivePuzzle(ctx context.Context, input *SetActivePuzzleInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	pipe := r.client.Pipeline()

	// Clear the outgoing puzzle's flag
	current, err := r.GetActivePuzzle(ctx, &GetActivePuzzleInput{})
	if err != nil && !errors.Is(err, ErrNoActivePuzzle) {
		return err
	}
	if current != nil && current.ID != input.PuzzleID {
		current.Active = false
		currentJSON, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to marshal puzzle: %w", err)
		}
		pipe.Set(ctx, puzzleKeyPrefix+current.ID, currentJSON, 0)
	}

	if input.PuzzleID == "" {
		pipe.Del(ctx, activePuzzleKey)
	} else {
		next, err := r.getPuzzle(ctx, input.PuzzleID)
		if err != nil {
			return err
		}
		next.Active = true

		nextJSON, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal puzzle: %w", err)
		}
		pipe.Set(ctx, puzzleKeyPrefix+next.ID, nextJSON, 0)
		pipe.Set(ctx, activePuzzleKey, next.ID, 0)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set active puzzle: %w", err)
	}

	return nil
}

// ListPuzzles retrieves all puzzles from Redis
func (r *redisRepository) ListPuzzles(ctx context.Context, input *ListPuzzlesInput) (*ListPuzzlesOutput, error) {
	puzzleIDs, err := r.client.SMembers(ctx, puzzlesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle IDs: %w", err)
	}

	if len(puzzleIDs) == 0 {
		return &ListPuzzlesOutput{Puzzles: []*models.Puzzle{}}, nil
	}

	pipe := r.client.Pipeline()
	puzzleCommands := make(map[string]*redis.StringCmd)

	for _, puzzleID := range puzzleIDs {
		puzzleCommands[puzzleID] = pipe.Get(ctx, puzzleKeyPrefix+puzzleID)
	}

	if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get puzzles: %w", err)
	}

	puzzles := make([]*models.Puzzle, 0, len(puzzleIDs))
	for puzzleID, cmd := range puzzleCommands {
		puzzleJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get puzzle %s: %w", puzzleID, err)
		}

		var puzzle models.Puzzle
		if err := json.Unmarshal([]byte(puzzleJSON), &puzzle); err != nil {
			return nil, fmt.Errorf("failed to unmarshal puzzle %s: %w", puzzleID, err)
		}

		puzzles = append(puzzles, &puzzle)
	}

	return &ListPuzzlesOutput{Puzzles: puzzles}, nil
}
