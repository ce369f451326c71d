package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"trial-monitor/pkg/response"
)

const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

// ErrRateLimited is returned once a sender has used up its budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiter keeps one token bucket per key. Idle keys expire after limiterTTL.
// A zero or negative rate disables limiting.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerMin int) *RateLimiter {
	if requestsPerMin <= 0 {
		return &RateLimiter{}
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow takes one token for key.
func (rl *RateLimiter) Allow(key string) error {
	if rl == nil || rl.limiters == nil {
		return nil
	}

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}

// RateLimit rejects requests whose key has no tokens left with 429.
// keyFn picks the key; the client IP is used when it returns "".
func (m Middleware) RateLimit(keyFn func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		if keyFn != nil {
			key = keyFn(c)
		}
		if key == "" {
			key = c.ClientIP()
		}

		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c, err)
			return
		}
		c.Next()
	}
}
