package duel

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
	duelKeyPrefix       = "duel:"
	pendingOutKeyPrefix = "duel_pending_out:" // duel_pending_out:{player} -> duel ID
	pendingInKeyPrefix  = "duel_pending_in:"  // duel_pending_in:{player} -> duel ID
	activeKeyPrefix     = "duel_active:"      // duel_active:{player} -> duel ID
	activeSetKey        = "duel_active_ids"   // set of ACTIVE duel IDs

	// maxTxRetries bounds the optimistic-lock retry loop
	maxTxRetries = 10
)

// ErrDuelNotFound is returned when a duel is not found
var ErrDuelNotFound = errors.New("duel not found")

// ErrChallengePending is returned when a pending-challenge slot is taken
var ErrChallengePending = errors.New("player already has a pending challenge")

// ErrDuelActive is returned when a player is already in an active duel
var ErrDuelActive = errors.New("player already in an active duel")

// Config holds configuration for the Redis duel repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed duel repository
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

// CreateDuel persists a new PENDING duel. The per-player pointer keys
// are claimed with SETNX before the duel row is written; a taken slot
// means the invariant would be violated and nothing is applied.
func (r *redisRepository) CreateDuel(ctx context.Context, input *CreateDuelInput) error {
	if input == nil || input.Duel == nil {
		return errors.New("input and duel cannot be nil")
	}

	d := input.Duel
	if d.ID == "" || d.ChallengerID == "" || d.OpponentID == "" {
		return errors.New("duel ID and player IDs cannot be empty")
	}

	// Neither party may already be racing
	for _, playerID := range []string{d.ChallengerID, d.OpponentID} {
		exists, err := r.client.Exists(ctx, activeKeyPrefix+playerID).Result()
		if err != nil {
			return fmt.Errorf("failed to check active duel: %w", err)
		}
		if exists > 0 {
			return ErrDuelActive
		}
	}

	outKey := pendingOutKeyPrefix + d.ChallengerID
	inKey := pendingInKeyPrefix + d.OpponentID

	outClaimed, err := r.client.SetNX(ctx, outKey, d.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim outgoing slot: %w", err)
	}
	if !outClaimed {
		return ErrChallengePending
	}

	inClaimed, err := r.client.SetNX(ctx, inKey, d.ID, 0).Result()
	if err != nil {
		r.client.Del(ctx, outKey)
		return fmt.Errorf("failed to claim incoming slot: %w", err)
	}
	if !inClaimed {
		r.client.Del(ctx, outKey)
		return ErrChallengePending
	}

	duelJSON, err := json.Marshal(d)
	if err != nil {
		r.client.Del(ctx, outKey, inKey)
		return fmt.Errorf("failed to marshal duel: %w", err)
	}

	if err := r.client.Set(ctx, duelKeyPrefix+d.ID, duelJSON, 0).Err(); err != nil {
		r.client.Del(ctx, outKey, inKey)
		return fmt.Errorf("failed to save duel: %w", err)
	}

	return nil
}

// GetDuel retrieves a duel by ID from Redis
func (r *redisRepository) GetDuel(ctx context.Context, input *GetDuelInput) (*models.Duel, error) {
	if input == nil || input.DuelID == "" {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	return r.getDuel(ctx, input.DuelID)
}

func (r *redisRepository) getDuel(ctx context.Context, duelID string) (*models.Duel, error) {
	duelJSON, err := r.client.Get(ctx, duelKeyPrefix+duelID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to get duel: %w", err)
	}

	var duel models.Duel
	if err := json.Unmarshal([]byte(duelJSON), &duel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duel: %w", err)
	}

	return &duel, nil
}

// ListActiveDuels retrieves every ACTIVE duel via the active-ID set
func (r *redisRepository) ListActiveDuels(ctx context.Context, input *ListActiveDuelsInput) (*ListActiveDuelsOutput, error) {
	ids, err := r.client.SMembers(ctx, activeSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active duel IDs: %w", err)
	}

	duels := make([]*models.Duel, 0, len(ids))
	for _, id := range ids {
		duel, err := r.getDuel(ctx, id)
		if err != nil {
			if errors.Is(err, ErrDuelNotFound) {
				continue
			}
			return nil, err
		}
		duels = append(duels, duel)
	}

	return &ListActiveDuelsOutput{Duels: duels}, nil
}

func (r *redisRepository) getDuelByPointer(ctx context.Context, pointerKey string) (*models.Duel, error) {
	duelID, err := r.client.Get(ctx, pointerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to resolve duel pointer: %w", err)
	}

	return r.getDuel(ctx, duelID)
}

// GetPendingDuelByOpponent retrieves a player's incoming PENDING duel
func (r *redisRepository) GetPendingDuelByOpponent(ctx context.Context, input *GetPendingDuelByOpponentInput) (*models.Duel, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return r.getDuelByPointer(ctx, pendingInKeyPrefix+input.PlayerID)
}

// GetPendingDuelByChallenger retrieves a player's outgoing PENDING duel
func (r *redisRepository) GetPendingDuelByChallenger(ctx context.Context, input *GetPendingDuelByChallengerInput) (*models.Duel, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return r.getDuelByPointer(ctx, pendingOutKeyPrefix+input.PlayerID)
}

// GetActiveDuelByPlayer retrieves the duel a player is racing in
func (r *redisRepository) GetActiveDuelByPlayer(ctx context.Context, input *GetActiveDuelByPlayerInput) (*models.Duel, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return r.getDuelByPointer(ctx, activeKeyPrefix+input.PlayerID)
}

// UpdateDuel applies a mutation under WATCH on the single duel key.
// If another writer touches the duel between the read and the EXEC the
// transaction fails and the whole read-mutate-write cycle retries, so
// the second of two racing completions re-reads the already-COMPLETED
// row instead of re-arbitrating.
func (r *redisRepository) UpdateDuel(ctx context.Context, input *UpdateDuelInput) (*models.Duel, error) {
	if input == nil || input.DuelID == "" || input.Update == nil {
		return nil, errors.New("input, duel ID and update func cannot be empty")
	}

	key := duelKeyPrefix + input.DuelID
	var updated *models.Duel

	txn := func(tx *redis.Tx) error {
		duelJSON, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrDuelNotFound
		}
		if err != nil {
			return err
		}

		var duel models.Duel
		if err := json.Unmarshal([]byte(duelJSON), &duel); err != nil {
			return fmt.Errorf("failed to unmarshal duel: %w", err)
		}

		oldStatus := duel.Status
		if err := input.Update(&duel); err != nil {
			return err
		}

		newJSON, err := json.Marshal(&duel)
		if err != nil {
			return fmt.Errorf("failed to marshal duel: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, newJSON, 0)
			maintainIndexes(ctx, pipe, &duel, oldStatus)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &duel
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if err == redis.TxFailedErr {
			// Lost the race, re-read and retry
			continue
		}
		return nil, err
	}

	return nil, errors.New("duel update exceeded optimistic lock retries")
}

// maintainIndexes keeps the per-player pointer keys in step with a
// status transition.
func maintainIndexes(ctx context.Context, pipe redis.Pipeliner, duel *models.Duel, oldStatus models.DuelStatus) {
	if oldStatus == duel.Status {
		return
	}

	switch {
	case oldStatus == models.DuelStatusPending && duel.Status == models.DuelStatusActive:
		pipe.Del(ctx, pendingOutKeyPrefix+duel.ChallengerID, pendingInKeyPrefix+duel.OpponentID)
		pipe.Set(ctx, activeKeyPrefix+duel.ChallengerID, duel.ID, 0)
		pipe.Set(ctx, activeKeyPrefix+duel.OpponentID, duel.ID, 0)
		pipe.SAdd(ctx, activeSetKey, duel.ID)

	case oldStatus == models.DuelStatusPending:
		// Declined or cancelled, release the pending slots
		pipe.Del(ctx, pendingOutKeyPrefix+duel.ChallengerID, pendingInKeyPrefix+duel.OpponentID)

	case oldStatus == models.DuelStatusActive && duel.Status.Terminal():
		// Completed, or cancelled by the expiry sweep
		pipe.Del(ctx, activeKeyPrefix+duel.ChallengerID, activeKeyPrefix+duel.OpponentID)
		pipe.SRem(ctx, activeSetKey, duel.ID)
	}
}
