package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key.
// A client may burst up to limit requests and refills at limit per window.
//
// Thread Safety: Safe for concurrent use.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   int
	window  time.Duration
	every   rate.Limit
	done    chan struct{}
	once    sync.Once
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its idle-client sweeper.
// Call Stop to end the sweeper.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   limit,
		window:  window,
		every:   rate.Limit(float64(limit) / window.Seconds()),
		done:    make(chan struct{}),
	}
	go rl.cleanup(window * 2)
	return rl
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, b := range rl.clients {
				if now.Sub(b.lastSeen) > interval {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop ends the sweeper goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) bucket(key string, now time.Time) *rate.Limiter {
	b, ok := rl.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.clients[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// Allow reports whether the client identified by key may proceed, the tokens
// left afterwards and, when rejected, how long until the next token.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	limiter := rl.bucket(key, now)
	if limiter.AllowN(now, 1) {
		return true, int(math.Floor(limiter.TokensAt(now))), 0
	}

	r := limiter.ReserveN(now, 1)
	retryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, retryAfter
}

// Limit returns the burst size
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// RateLimit limits requests per client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByKey limits requests per key returned by keyFunc
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := limiter.Allow(keyFunc(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
			c.AbortWithStatusJSON(dto.GetHTTPStatus(dto.ErrCodeRateLimited),
				dto.NewErrorResponseWithRequestID(dto.ErrCodeRateLimited,
					"Too many requests. Please try again later.", GetRequestID(c)))
			return
		}
		c.Next()
	}
}
