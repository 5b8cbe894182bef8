package handler

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/service"
	"github.com/prperemyshlev/vidverse/pkg/observability"
	"go.uber.org/zap"
)

// RateLimitMiddleware rejects requests over limit per window for the key returned by keyFunc.
// Limiter failures are logged and the request is let through.
func RateLimitMiddleware(
	rateLimiter *service.RateLimiter,
	metrics *observability.Metrics,
	logger *zap.Logger,
	limit int,
	window time.Duration,
	keyFunc func(*gin.Context) string,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)

		result, err := rateLimiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			metrics.RateLimited(c.Request.Context(), c.FullPath())
			fail(c, apierror.TooManyRequests(fmt.Sprintf("Rate limit exceeded, try again in %ds", retryAfter)))
			return
		}

		c.Next()
	}
}

// IPBasedKey extracts rate limit key from client IP. X-Forwarded-For is
// only consulted when the peer is one of the engine's trusted proxies.
func IPBasedKey(c *gin.Context) string {
	return c.ClientIP()
}

// RouteAndIPKey limits each route separately per client IP
func RouteAndIPKey(c *gin.Context) string {
	return fmt.Sprintf("%s:%s", c.FullPath(), IPBasedKey(c))
}
