package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"travix/models"
)

const searchCachePrefix = "search:"

// TransportSource is any mode-specific transport search.
type TransportSource interface {
	Search(ctx context.Context, q models.TransportQuery) ([]models.Transport, error)
}

// CachedTransportSearch serves repeated searches for the same route, date and
// party size from Redis. Cache failures are logged and the search goes through.
type CachedTransportSearch struct {
	next   TransportSource
	mode   models.Mode
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedTransportSearch(next TransportSource, mode models.Mode, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedTransportSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTransportSearch{next: next, mode: mode, client: client, ttl: ttl, logger: logger}
}

// cachedResult tags the stored offers with their kind so they can be decoded
// back into concrete offer types.
type cachedResult struct {
	Kind   string          `json:"kind"`
	Offers json.RawMessage `json:"offers"`
}

func (c *CachedTransportSearch) Search(ctx context.Context, q models.TransportQuery) ([]models.Transport, error) {
	key := c.key(q)

	if offers, ok := c.load(ctx, key); ok {
		return offers, nil
	}

	offers, err := c.next.Search(ctx, q)
	if err != nil || len(offers) == 0 {
		return offers, err
	}
	c.store(ctx, key, offers)
	return offers, nil
}

func (c *CachedTransportSearch) key(q models.TransportQuery) string {
	return fmt.Sprintf("%s%s:%s:%s:%s:%d", searchCachePrefix, c.mode.Kind(),
		strings.ToLower(q.Origin), strings.ToLower(q.Destination), q.Date, q.Passengers)
}

func (c *CachedTransportSearch) load(ctx context.Context, key string) ([]models.Transport, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("Search cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("Search cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	offers, err := decodeOffers(cached)
	if err != nil {
		c.logger.Warn("Search cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return offers, true
}

func (c *CachedTransportSearch) store(ctx context.Context, key string, offers []models.Transport) {
	raw, err := json.Marshal(offers)
	if err != nil {
		c.logger.Warn("Failed to encode search results", zap.Error(err))
		return
	}
	b, err := json.Marshal(cachedResult{Kind: offers[0].Mode().Kind(), Offers: raw})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.logger.Warn("Search cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func decodeOffers(cached cachedResult) ([]models.Transport, error) {
	var offers []models.Transport
	switch cached.Kind {
	case models.ModeFlight.Kind():
		var items []*models.FlightOffer
		if err := json.Unmarshal(cached.Offers, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			offers = append(offers, item)
		}
	case models.ModeTrain.Kind():
		var items []*models.TrainOffer
		if err := json.Unmarshal(cached.Offers, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			offers = append(offers, item)
		}
	case models.ModeBus.Kind():
		var items []*models.BusOffer
		if err := json.Unmarshal(cached.Offers, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			offers = append(offers, item)
		}
	default:
		return nil, fmt.Errorf("unknown offer kind %q", cached.Kind)
	}
	return offers, nil
}
