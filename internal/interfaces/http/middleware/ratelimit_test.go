package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := rl.Allow("10.0.0.1")
		require.True(t, allowed, "request %d", i)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, _, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Other clients have their own bucket
	allowed, _, _ = rl.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimit_Middleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), RateLimit(rl))
	router.GET("/api/bills", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do().Code)

	limited := do()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Equal(t, dto.ErrCodeRateLimited, errorCode(t, limited))
}

func TestRateLimitByKey_CustomKey(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()

	router := gin.New()
	router.Use(RateLimitByKey(rl, func(c *gin.Context) string {
		return c.GetHeader("X-Client")
	}))
	router.POST("/api/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.Header.Set("X-Client", client)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"))
}
