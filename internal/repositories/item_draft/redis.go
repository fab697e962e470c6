package item_draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

const draftKeyPrefix = "item_draft:"

// ErrDraftNotFound is returned when the user has no draft or it expired
var ErrDraftNotFound = errors.New("item draft not found")

// Config holds configuration for the Redis draft repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed draft repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func draftKey(userID string) string {
	return fmt.Sprintf("%s%s", draftKeyPrefix, userID)
}

// SaveDraft stores the draft as JSON with the given expiry
func (r *redisRepository) SaveDraft(ctx context.Context, input *SaveDraftInput) error {
	if input == nil || input.Draft == nil || input.Draft.UserID == "" {
		return errors.New("input, draft and user ID cannot be empty")
	}
	if input.TTL <= 0 {
		return errors.New("draft TTL must be positive")
	}

	draftJSON, err := json.Marshal(input.Draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := r.client.Set(ctx, draftKey(input.Draft.UserID), draftJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft for user %s: %w", input.Draft.UserID, err)
	}

	return nil
}

// GetDraft retrieves the user's draft
func (r *redisRepository) GetDraft(ctx context.Context, input *GetDraftInput) (*models.ItemDraft, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	draftJSON, err := r.client.Get(ctx, draftKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft for user %s: %w", input.UserID, err)
	}

	var draft models.ItemDraft
	if err := json.Unmarshal([]byte(draftJSON), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

// DeleteDraft removes the user's draft
func (r *redisRepository) DeleteDraft(ctx context.Context, input *DeleteDraftInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if err := r.client.Del(ctx, draftKey(input.UserID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft for user %s: %w", input.UserID, err)
	}

	return nil
}
