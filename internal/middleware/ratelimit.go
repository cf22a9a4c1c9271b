package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shortsreel/backend/pkg/response"
)

// Counter is the slice of Redis the rate limiter needs: an atomic
// increment that sets the key's expiry when first created.
type Counter interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimit returns a fixed-window per-client-IP limiter for the login
// endpoint. If the counter backend is unavailable the request proceeds
// and a warning is logged: a broken Redis must not lock the admin out.
func RateLimit(counter Counter, limit int64, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		n, err := counter.IncrWithTTL(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("rate limit backend unavailable", zap.Error(err))
			c.Next()
			return
		}
		if n > limit {
			response.TooManyRequests(c, "too many login attempts")
			c.Abort()
			return
		}
		c.Next()
	}
}
