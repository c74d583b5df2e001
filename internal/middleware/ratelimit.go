package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// Entries idle this long are dropped on the next sweep.
	limiterIdleTimeout = 10 * time.Minute
	// Map size that triggers a sweep of idle entries.
	limiterSweepThreshold = 1024
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool hands out one token bucket per client IP. Idle entries are
// swept once the map passes the threshold so the pool stays bounded over
// the life of the process.
type limiterPool struct {
	mu        sync.Mutex
	perSecond rate.Limit
	burst     int
	entries   map[string]*limiterEntry
}

func newLimiterPool(perSecond float64, burst int) *limiterPool {
	return &limiterPool{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		entries:   make(map[string]*limiterEntry),
	}
}

func (p *limiterPool) get(ip string, now time.Time) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.entries) >= limiterSweepThreshold {
		p.sweep(now)
	}

	entry, ok := p.entries[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(p.perSecond, p.burst)}
		p.entries[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// sweep drops entries not seen within the idle timeout. Caller holds the lock.
func (p *limiterPool) sweep(now time.Time) {
	for ip, entry := range p.entries {
		if now.Sub(entry.lastSeen) > limiterIdleTimeout {
			delete(p.entries, ip)
		}
	}
}

// RateLimit applies a per-client-IP token bucket. Used on the credential
// endpoints to slow down guessing; everything else is unthrottled.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(perSecond, burst)

	return func(c *gin.Context) {
		if !pool.get(c.ClientIP(), time.Now()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
