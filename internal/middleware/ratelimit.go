package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/handlers/common"
	"nutriplan-go/internal/logging"
	"nutriplan-go/internal/monitoring"
)

const (
	limiterTTL        = 15 * time.Minute
	limiterSweepEvery = 2 * time.Minute
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ttlLimiterCache holds per-client limiters and drops idle ones opportunistically.
type ttlLimiterCache struct {
	mu        sync.Mutex
	items     map[string]*limiterEntry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newTTLLimiterCache(ttl time.Duration) *ttlLimiterCache {
	return &ttlLimiterCache{items: make(map[string]*limiterEntry), ttl: ttl, now: time.Now}
}

func (c *ttlLimiterCache) get(key string, makeFn func() *rate.Limiter) *rate.Limiter {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastSweep.IsZero() || now.Sub(c.lastSweep) > limiterSweepEvery {
		c.sweepLocked(now)
		c.lastSweep = now
	}
	if e, ok := c.items[key]; ok {
		e.lastSeen = now
		return e.lim
	}
	lim := makeFn()
	c.items[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

func (c *ttlLimiterCache) sweepLocked(now time.Time) {
	for k, e := range c.items {
		if now.Sub(e.lastSeen) > c.ttl {
			delete(c.items, k)
		}
	}
}

func (c *ttlLimiterCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// RateLimiter limits inbound requests per client IP. This protects the
// credential pool from a single noisy client; it is unrelated to upstream rotation.
func RateLimiter(rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = rps * 2
	}
	cache := newTTLLimiterCache(limiterTTL)
	return func(c *gin.Context) {
		lim := cache.get(c.ClientIP(), func() *rate.Limiter { return rate.NewLimiter(rate.Limit(rps), burst) })
		if !lim.Allow() {
			monitoring.RateLimitRejectedTotal.Inc()
			logging.WithReq(c, nil).Debug("inbound rate limit exceeded")
			c.Header("Retry-After", "1")
			common.AbortWithAPIError(c, apperrors.New(http.StatusTooManyRequests,
				"rate_limit_exceeded", "rate_limit_error", "Too many requests, slow down"))
			return
		}
		c.Next()
	}
}
