package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	started time.Time
}

// RateLimiter counts requests per caller within a fixed window. Callers are
// keyed by tenant once authenticated, by client IP otherwise, so one tenant
// hammering the simplification endpoints cannot starve the others.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	rate    int           // requests per window
	window  time.Duration // time window
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*rateWindow),
		rate:    rate,
		window:  window,
	}
}

// Allow reports whether a request for key fits in the current window.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.started) > l.window {
		l.windows[key] = &rateWindow{count: 1, started: now}
		return true
	}
	if w.count >= l.rate {
		return false
	}
	w.count++
	return true
}

// RateLimit middleware limits requests per tenant (or client IP when unauthenticated)
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(rate, window)

	return func(c *gin.Context) {
		key := GetTenant(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			slog.Warn("rate limit exceeded",
				"caller", key,
				"request_id", GetRequestID(c),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
