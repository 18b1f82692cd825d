package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	snapshotKeyPrefix = "leaderboard_snapshot:" // leaderboard_snapshot:{puzzle} -> entries JSON
)

// ErrSnapshotNotFound is returned when no snapshot exists for a puzzle
var ErrSnapshotNotFound = errors.New("leaderboard snapshot not found")

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

// SaveWeeklySnapshot persists a ranking exactly once per puzzle. SETNX
// is the existence guard: once a snapshot exists, concurrent or
// repeated triggers write nothing and report AlreadyPersisted.
func (r *redisRepository) SaveWeeklySnapshot(ctx context.Context, input *SaveWeeklySnapshotInput) (*SaveWeeklySnapshotOutput, error) {
	if input == nil || input.PuzzleID == "" {
		return nil, errors.New("input and puzzle ID cannot be empty")
	}

	entriesJSON, err := json.Marshal(input.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	written, err := r.client.SetNX(ctx, snapshotKeyPrefix+input.PuzzleID, entriesJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return &SaveWeeklySnapshotOutput{AlreadyPersisted: !written}, nil
}

// GetWeeklySnapshot retrieves a puzzle's persisted ranking
func (r *redisRepository) GetWeeklySnapshot(ctx context.Context, input *GetWeeklySnapshotInput) (*GetWeeklySnapshotOutput, error) {
	if input == nil || input.PuzzleID == "" {
		return nil, errors.New("input and puzzle ID cannot be empty")
	}

	entriesJSON, err := r.client.Get(ctx, snapshotKeyPrefix+input.PuzzleID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var entries []*models.WeeklyLeaderboardEntry
	if err := json.Unmarshal([]byte(entriesJSON), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &GetWeeklySnapshotOutput{Entries: entries}, nil
}

// HasSnapshot reports whether a puzzle's ranking was already persisted
func (r *redisRepository) HasSnapshot(ctx context.Context, input *HasSnapshotInput) (bool, error) {
	if input == nil || input.PuzzleID == "" {
		return false, errors.New("input and puzzle ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, snapshotKeyPrefix+input.PuzzleID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot: %w", err)
	}

	return exists > 0, nil
}
