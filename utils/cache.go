// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"travix/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs short-lived search result caching.
	CacheClient *redis.Client
	// ContextClient stores conversation contexts for callers that send a session ID.
	ContextClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// InitCache initializes the search cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
}

// GetCacheClient returns the search cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitContextCache initializes the conversation context client.
func InitContextCache() {
	ContextClient = newRedisClient(config.AppConfig.RedisContextDB, "Context")
}

// GetContextCacheClient returns the conversation context client.
func GetContextCacheClient() *redis.Client {
	if ContextClient == nil {
		InitContextCache()
	}
	return ContextClient
}
