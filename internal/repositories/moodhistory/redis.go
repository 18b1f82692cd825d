package moodhistory

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
	historyKeyPrefix = "mood_history:"
)

// Config holds configuration for the Redis mood history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed mood history repository
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

// AddEntry appends a tier-transition record to the player's history
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal mood history entry: %w", err)
	}

	if err := r.client.RPush(ctx, historyKeyPrefix+input.Entry.PlayerID, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to add mood history entry: %w", err)
	}

	return nil
}

// GetEntries retrieves a player's transition history, oldest first
func (r *redisRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	raw, err := r.client.LRange(ctx, historyKeyPrefix+input.PlayerID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get mood history: %w", err)
	}

	entries := make([]*models.MoodHistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.MoodHistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mood history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &GetEntriesOutput{Entries: entries}, nil
}
