package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/makelifebetter/storefront-service/internal/domain/cart"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

const cartKeyPrefix = "cart:"

// CartStore persists carts as JSON documents in Redis, one key per user.
// It implements cart.Store.
type CartStore struct {
	client *redis.Client
	logger *logger.Logger
}

func NewCartStore(conn *Connection, log *logger.Logger) *CartStore {
	client := monitoring.InstrumentRedisClient(conn.GetClient())

	return &CartStore{
		client: client,
		logger: log,
	}
}

// Load reads the persisted cart. A missing key yields an empty cart; a
// corrupt payload is reported as an error so the engine can log it and fall
// back to empty.
func (s *CartStore) Load(ctx context.Context, key string) ([]cart.LineItem, error) {
	payload, err := s.client.Get(ctx, cartKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return []cart.LineItem{}, nil
		}
		return nil, err
	}

	var items []cart.LineItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("corrupt cart payload: %w", err)
	}

	return items, nil
}

func (s *CartStore) Save(ctx context.Context, key string, items []cart.LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, cartKeyPrefix+key, payload, 0).Err()
}

// Delete removes the persisted cart entirely.
func (s *CartStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, cartKeyPrefix+key).Err()
}
