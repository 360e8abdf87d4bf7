// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"travix/models"
)

const tripContextPrefix = "trip:ctx:"

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

// Get returns the stored context; found is false for unknown or expired sessions.
func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (models.TripContext, bool, error) {
	data, err := s.client.Get(ctx, tripContextPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.TripContext{}, false, nil
	}
	if err != nil {
		return models.TripContext{}, false, fmt.Errorf("load trip context: %w", err)
	}
	var tc models.TripContext
	if err := json.Unmarshal(data, &tc); err != nil {
		return models.TripContext{}, false, fmt.Errorf("decode trip context: %w", err)
	}
	return tc, true, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, tc models.TripContext) error {
	b, err := json.Marshal(tc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, tripContextPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, tripContextPrefix+sessionID).Err()
}
