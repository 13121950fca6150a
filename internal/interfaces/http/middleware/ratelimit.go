package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/ratelimit"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/utils"
)

// RateLimiter limits requests per authenticated user, or per client IP for guests.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  ratelimit.Policy{Limit: limit, Window: window},
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.key(c)

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// Redis unavailable: let traffic through
			rl.logger.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.policy.Limit))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.policy.Window.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) key(c *gin.Context) string {
	if viewer := authorization.ViewerFromContext(c); !viewer.IsGuest() {
		return fmt.Sprintf("user:%d", viewer.UserID)
	}
	return "ip:" + c.ClientIP()
}
