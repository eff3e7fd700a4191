// internal/domain/cart/persist.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisArchiver stores cart snapshots in Redis as JSON. Serialization happens
// only at this boundary; nothing else reads or writes the persisted form.
type RedisArchiver struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisArchiver creates a Redis-backed cart archiver
func NewRedisArchiver(client *redis.Client, ttl time.Duration) *RedisArchiver {
	return &RedisArchiver{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

// Save serializes and stores the cart snapshot with expiration
func (a *RedisArchiver) Save(ctx context.Context, userID uint, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}

	return a.client.Set(ctx, cartKey(userID), data, a.ttl).Err()
}

// Load retrieves and deserializes a cart snapshot. The second return value
// reports whether a snapshot existed.
func (a *RedisArchiver) Load(ctx context.Context, userID uint) ([]LineItem, bool, error) {
	data, err := a.client.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, false, fmt.Errorf("failed to deserialize cart snapshot: %w", err)
	}

	return items, true, nil
}

// Delete removes the persisted snapshot
func (a *RedisArchiver) Delete(ctx context.Context, userID uint) error {
	return a.client.Del(ctx, cartKey(userID)).Err()
}
