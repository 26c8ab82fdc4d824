package http

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipRateLimiter tracks one token bucket per client IP.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSec float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(requestsPerSec),
		burst:    burst,
	}
}

// limiterFor returns the limiter for the given client IP, creating it on first use.
func (l *ipRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[clientIP]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[clientIP] = limiter
	}
	return limiter
}

// RateLimitMiddleware returns a Gin middleware that rate limits requests per
// client IP. Requests over the limit receive 429 Too Many Requests.
func RateLimitMiddleware(requestsPerSec float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	limiter := newIPRateLimiter(requestsPerSec, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !limiter.limiterFor(clientIP).Allow() {
			logger.Warn("rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "Too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
