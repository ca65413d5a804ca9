package middlewares

import (
	"net/http"
	"os"
	"time"

	"civiclink-be/config"

	"github.com/gin-gonic/gin"
)

// IssueRateLimiter caps issue submissions per client per day. The issue route
// is unauthenticated, so the key is the client IP. No-op when Redis is not
// configured.
func IssueRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		ctx := config.Ctx
		queuePrefix := os.Getenv("REDIS_QUEUE_FOR_ISSUE_LIMIT")
		if queuePrefix == "" {
			queuePrefix = "issue_limit"
		}

		// Individual key per client
		clientKey := queuePrefix + ":" + c.ClientIP()

		// Increment the client's count with TTL
		count, err := config.RedisClient.Incr(ctx, clientKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, clientKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, clientKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
