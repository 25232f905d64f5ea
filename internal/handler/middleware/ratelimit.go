package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"lead-capture/internal/handler/httperr"
	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than the configured TTL are swept at most once per TTL.
//
// The client IP comes from gin's ClientIP, so the engine's trusted proxy list
// decides whether X-Forwarded-For is believed.
type IPRateLimiter struct {
	visitors  sync.Map
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	clock     clock.Clock
	lastSweep atomic.Int64
}

func NewIPRateLimiter(cfg config.RateLimitConfig) *IPRateLimiter {
	return NewIPRateLimiterWithClock(cfg, clock.NewRealClock())
}

func NewIPRateLimiterWithClock(cfg config.RateLimitConfig, clk clock.Clock) *IPRateLimiter {
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	l := &IPRateLimiter{
		rate:    rate.Limit(cfg.SubmitPerMinute / 60.0),
		burst:   cfg.SubmitBurst,
		idleTTL: ttl,
		clock:   clk,
	}
	l.lastSweep.Store(clk.Now().UnixNano())
	return l
}

func (i *IPRateLimiter) allow(ip string, now time.Time) bool {
	i.sweep(now)

	v, ok := i.visitors.Load(ip)
	if !ok {
		v, _ = i.visitors.LoadOrStore(ip, &visitor{limiter: rate.NewLimiter(i.rate, i.burst)})
	}
	vis := v.(*visitor)
	vis.lastSeen.Store(now.UnixNano())
	return vis.limiter.AllowN(now, 1)
}

func (i *IPRateLimiter) sweep(now time.Time) {
	last := i.lastSweep.Load()
	if now.UnixNano()-last < int64(i.idleTTL) || !i.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	cutoff := now.Add(-i.idleTTL).UnixNano()
	evicted := 0
	i.visitors.Range(func(key, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff {
			i.visitors.Delete(key)
			evicted++
		}
		return true
	})
	if evicted > 0 {
		slog.Debug("rate limiter buckets evicted", "count", evicted)
	}
}

func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !i.allow(ip, i.clock.Now()) {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
