package config

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var RedisClient *redis.Client

// ConnectRedis initializes the Redis client used for issue rate limiting.
// Skipped entirely when REDIS_ADDRESS is unset; the limiter then passes
// everything through.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		return
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       0, // default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	fmt.Println("Connected to Redis")
}
