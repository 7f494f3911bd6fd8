package raffle

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/snapshot"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	raffleKeyPrefix = "raffle:"
	rafflesKey      = "raffles"
)

// ErrRaffleNotFound is returned when nothing is stored for a raffle
var ErrRaffleNotFound = errors.New("raffle not found")

// Config holds configuration for the Redis raffle repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed raffle repository
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

func raffleKey(raffleID string) string {
	return fmt.Sprintf("%s%s", raffleKeyPrefix, raffleID)
}

// SaveState stores the raffle as a snapshot document
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}
	if input.RaffleID == "" {
		return errors.New("raffle ID cannot be empty")
	}

	data, err := snapshot.Encode(input.State)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, raffleKey(input.RaffleID), data, 0)
	pipe.SAdd(ctx, rafflesKey, input.RaffleID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save raffle: %w", err)
	}

	return nil
}

// GetState loads and normalizes the stored snapshot of a raffle
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.RaffleState, error) {
	if input == nil || input.RaffleID == "" {
		return nil, errors.New("input and raffle ID cannot be empty")
	}

	data, err := r.client.Get(ctx, raffleKey(input.RaffleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRaffleNotFound
		}
		return nil, fmt.Errorf("failed to get raffle: %w", err)
	}

	state, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raffle %s: %w", input.RaffleID, err)
	}

	return state, nil
}

// DeleteState removes a raffle
func (r *redisRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if input == nil || input.RaffleID == "" {
		return errors.New("input and raffle ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, raffleKey(input.RaffleID))
	pipe.SRem(ctx, rafflesKey, input.RaffleID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete raffle: %w", err)
	}

	return nil
}

// ListRaffles returns the stored raffle IDs in lexical order
func (r *redisRepository) ListRaffles(ctx context.Context, input *ListRafflesInput) (*ListRafflesOutput, error) {
	ids, err := r.client.SMembers(ctx, rafflesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}

	sort.Strings(ids)

	return &ListRafflesOutput{
		RaffleIDs: ids,
	}, nil
}
