package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupThreshold = 500
	limiterMaxIdle          = 10 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter hands out one token bucket per client IP. A non-positive rate
// disables limiting.
type ipRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*limiterEntry
	limit rate.Limit
	burst int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		ips:   make(map[string]*limiterEntry),
		limit: rate.Limit(rps),
		burst: burst,
	}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if len(l.ips) > limiterCleanupThreshold {
		cutoff := now.Add(-limiterMaxIdle)
		for key, entry := range l.ips {
			if entry.lastSeen.Before(cutoff) {
				delete(l.ips, key)
			}
		}
	}

	entry, ok := l.ips[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (l *ipRateLimiter) allow(ip string) bool {
	if l == nil {
		return true
	}
	return l.get(ip).Allow()
}

func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.allow(c.ClientIP()) {
			s.logger.WarnContext(c.Request.Context(), "rate limited", "ip", c.ClientIP(), "path", c.FullPath())
			writeError(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
