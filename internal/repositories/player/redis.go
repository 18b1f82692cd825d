package player

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
	playerKeyPrefix = "player:"
	playersKey      = "players"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// ErrInsufficientCoins is returned when a balance change would go negative
var ErrInsufficientCoins = errors.New("insufficient hint coins")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKeyPrefix+input.Player.ID, playerJSON, 0)
	pipe.SAdd(ctx, playersKey, input.Player.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// ListPlayers retrieves all known players from Redis
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	playerIDs, err := r.client.SMembers(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return &ListPlayersOutput{Players: []*models.Player{}}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd)

	for _, playerID := range playerIDs {
		playerCommands[playerID] = pipe.Get(ctx, playerKeyPrefix+playerID)
	}

	if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was removed between getting the IDs and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}

		players = append(players, &player)
	}

	return &ListPlayersOutput{Players: players}, nil
}

// AdjustCoins atomically changes a player's hint coin balance using an
// optimistic transaction on the player key.
func (r *redisRepository) AdjustCoins(ctx context.Context, input *AdjustCoinsInput) (*AdjustCoinsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	key := playerKeyPrefix + input.PlayerID
	var balance int

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		playerJSON, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrPlayerNotFound
		}
		if err != nil {
			return err
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return fmt.Errorf("failed to unmarshal player: %w", err)
		}

		if player.HintCoins+input.Delta < 0 {
			return ErrInsufficientCoins
		}
		player.HintCoins += input.Delta
		balance = player.HintCoins

		updated, err := json.Marshal(&player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return nil, err
	}

	return &AdjustCoinsOutput{Balance: balance}, nil
}

// TransferCoins atomically moves coins between two players. Both player
// keys are watched so neither balance can change mid-transfer.
func (r *redisRepository) TransferCoins(ctx context.Context, input *TransferCoinsInput) error {
	if input == nil || input.FromPlayerID == "" || input.ToPlayerID == "" {
		return errors.New("input and player IDs cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("transfer amount must be positive")
	}

	fromKey := playerKeyPrefix + input.FromPlayerID
	toKey := playerKeyPrefix + input.ToPlayerID

	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		from, err := getWatchedPlayer(ctx, tx, fromKey)
		if err != nil {
			return err
		}
		to, err := getWatchedPlayer(ctx, tx, toKey)
		if err != nil {
			return err
		}

		if from.HintCoins < input.Amount {
			return ErrInsufficientCoins
		}
		from.HintCoins -= input.Amount
		to.HintCoins += input.Amount

		fromJSON, err := json.Marshal(from)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}
		toJSON, err := json.Marshal(to)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, fromKey, fromJSON, 0)
			pipe.Set(ctx, toKey, toJSON, 0)
			return nil
		})
		return err
	}, fromKey, toKey)
}

func getWatchedPlayer(ctx context.Context, tx *redis.Tx, key string) (*models.Player, error) {
	playerJSON, err := tx.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}
