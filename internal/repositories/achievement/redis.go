package achievement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzle/phrazzle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	unlockedKeyPrefix    = "achievements:"      // achievements:{player} -> set of keys
	unlockTimeKeyPrefix  = "achievement_times:" // achievement_times:{player} -> hash key -> unix nano
)

// Config holds configuration for the Redis achievement repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed achievement repository
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

// TryUnlock records an unlock exactly once. SADD's added-count is the
// guard: a second call for the same pair adds nothing and reports
// Unlocked=false, so concurrent or replayed checks can never
// double-award.
func (r *redisRepository) TryUnlock(ctx context.Context, input *TryUnlockInput) (*TryUnlockOutput, error) {
	if input == nil || input.PlayerID == "" || input.AchievementKey == "" {
		return nil, errors.New("input, player ID and achievement key cannot be empty")
	}

	added, err := r.client.SAdd(ctx, unlockedKeyPrefix+input.PlayerID, input.AchievementKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to record unlock: %w", err)
	}

	if added == 0 {
		return &TryUnlockOutput{Unlocked: false}, nil
	}

	err = r.client.HSet(ctx, unlockTimeKeyPrefix+input.PlayerID,
		input.AchievementKey, input.UnlockedAt.UnixNano()).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to record unlock time: %w", err)
	}

	return &TryUnlockOutput{Unlocked: true}, nil
}

// GetUnlocked retrieves all of a player's unlocked achievements
func (r *redisRepository) GetUnlocked(ctx context.Context, input *GetUnlockedInput) (*GetUnlockedOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	keys, err := r.client.SMembers(ctx, unlockedKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get unlocked achievements: %w", err)
	}

	times, err := r.client.HGetAll(ctx, unlockTimeKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get unlock times: %w", err)
	}

	unlocked := make([]*models.UnlockedAchievement, 0, len(keys))
	for _, key := range keys {
		entry := &models.UnlockedAchievement{
			PlayerID:       input.PlayerID,
			AchievementKey: key,
		}

		if raw, ok := times[key]; ok {
			var nanos int64
			if _, err := fmt.Sscanf(raw, "%d", &nanos); err == nil {
				entry.UnlockedAt = time.Unix(0, nanos)
			}
		}

		unlocked = append(unlocked, entry)
	}

	return &GetUnlockedOutput{Unlocked: unlocked}, nil
}
