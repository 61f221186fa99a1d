package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/domain"
)

const rateLimitBurst = 20

// RateLimit limits requests per client IP. Sessions are anonymous, so the
// client IP is the only identity available to throttle on.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerHour <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	perSecond := rate.Limit(float64(cfg.RequestsPerHour) / 3600.0)

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)
	lastSeen := make(map[string]time.Time)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(perSecond, rateLimitBurst)
			limiters[ip] = limiter
		}
		lastSeen[ip] = time.Now()

		// Drop limiters idle for over an hour so the map stays bounded.
		if len(limiters) > 1000 {
			cutoff := time.Now().Add(-time.Hour)
			for k, seen := range lastSeen {
				if seen.Before(cutoff) {
					delete(limiters, k)
					delete(lastSeen, k)
				}
			}
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": domain.ErrRateLimited.Error()})
			return
		}

		c.Next()
	}
}
