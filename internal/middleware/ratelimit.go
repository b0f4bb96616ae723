package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/config"
	"github.com/stemsi/campus-api/internal/response"
)

// Limiter decides whether a client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit returns a Gin middleware that rate-limits requests by client IP.
// Limiter errors let the request through.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("Rate limiter unavailable")
			allowed = true
		}
		if !allowed {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// MemoryLimiter implements a simple per-key token bucket held in process memory.
type MemoryLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      int           // Tokens per interval
	interval  time.Duration // Refill interval
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	tokens   int
	lastSeen time.Time
}

// NewMemoryLimiter creates a MemoryLimiter (e.g., 10 requests per minute).
func NewMemoryLimiter(rate int, interval time.Duration) *MemoryLimiter {
	if interval < time.Second {
		interval = time.Second
	}
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}
}

// Allow consumes one token for key.
func (rl *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{tokens: rl.rate, lastSeen: now}
		rl.visitors[key] = v
	}

	// Refill tokens based on elapsed time.
	refill := int(now.Sub(v.lastSeen)/rl.interval) * rl.rate
	if refill > 0 {
		v.tokens += refill
		if v.tokens > rl.rate {
			v.tokens = rl.rate
		}
		v.lastSeen = now
	}

	if v.tokens <= 0 {
		return false, nil
	}
	v.tokens--
	return true, nil
}

// sweep drops visitors idle for three intervals, at most once per interval.
func (rl *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	rl.lastSweep = now
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > 3*rl.interval {
			delete(rl.visitors, key)
		}
	}
}

// RedisLimiter counts requests per key in fixed windows stored in Redis,
// so the budget is shared by every server instance.
type RedisLimiter struct {
	rdb    *redis.Client
	rate   int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter creates a RedisLimiter allowing rate requests per window.
func NewRedisLimiter(rdb *redis.Client, rate int, window time.Duration) *RedisLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{rdb: rdb, rate: rate, window: window, now: time.Now}
}

// Allow increments the key's counter for the current window.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowIdx := rl.now().Unix() / int64(rl.window/time.Second)
	k := config.CacheKey.RateLimitKey(key, windowIdx)

	pipe := rl.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}
	return incr.Val() <= int64(rl.rate), nil
}
