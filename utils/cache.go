package utils

import (
	"context"
	"log"
	"time"

	"agendapro/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCacheClient builds the Redis client used to cache verified bearer
// tokens. Constructed once in main and injected into the auth middleware.
func NewAuthCacheClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
	return client
}
