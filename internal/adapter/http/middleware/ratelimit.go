package middleware

import (
	"fmt"
	"strconv"
	"time"

	"commerce-reconciler/config"
	redisStore "commerce-reconciler/internal/adapter/storage/redis"
	"commerce-reconciler/pkg/apperror"
	"commerce-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// RateLimitRules returns the limits per public endpoint group. Checkout is
// allowed a tenth of the public budget since each call reaches a gateway.
func RateLimitRules(cfg config.RateLimitConfig) map[string]RateLimitRule {
	public := RateLimitRule{Limit: cfg.PublicLimit, Window: cfg.PublicWindow}
	checkout := RateLimitRule{Limit: cfg.PublicLimit / 10, Window: cfg.PublicWindow}
	if checkout.Limit < 1 {
		checkout.Limit = 1
	}
	return map[string]RateLimitRule{
		"serviceability": public,
		"tracking":       public,
		"checkout":       checkout,
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys signed-in customers by id and everyone else by IP.
func extractIdentifier(c *gin.Context) string {
	if v, exists := c.Get(CtxUserID); exists {
		return fmt.Sprintf("user:%v", v)
	}
	return "ip:" + c.ClientIP()
}
