package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/giveaway-bot/internal/common/uuid"
)

const lockKeyPrefix = "lock:"

var (
	// ErrLockHeld is returned when another owner holds the lock
	ErrLockHeld = errors.New("lock held by another owner")

	// ErrLockLost is returned on release when the lease expired or was taken over
	ErrLockLost = errors.New("lock no longer owned")
)

// releaseScript deletes the key only while it still carries the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Config holds configuration for the Redis lock repository
type Config struct {
	RedisClient *redis.Client

	// UUID generates lease tokens
	UUID uuid.UUID
}

type redisRepository struct {
	client *redis.Client
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed lock repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUID == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
		uuid:   cfg.UUID,
	}, nil
}

func lockKey(name string) string {
	return fmt.Sprintf("%s%s", lockKeyPrefix, name)
}

// Acquire sets the lock key if absent
func (r *redisRepository) Acquire(ctx context.Context, input *AcquireInput) (*Lease, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and lock name cannot be empty")
	}
	if input.TTL <= 0 {
		return nil, errors.New("lock TTL must be positive")
	}

	token := r.uuid.NewUUID()
	ok, err := r.client.SetNX(ctx, lockKey(input.Name), token, input.TTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", input.Name, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return &Lease{
		Name:  input.Name,
		Token: token,
	}, nil
}

// Release deletes the lock key when the caller still owns it
func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil || input.Lease == nil || input.Lease.Name == "" {
		return errors.New("input and lease cannot be empty")
	}

	deleted, err := releaseScript.Run(ctx, r.client, []string{lockKey(input.Lease.Name)}, input.Lease.Token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", input.Lease.Name, err)
	}
	if deleted == 0 {
		return ErrLockLost
	}

	return nil
}
