package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tenantbill/backend/internal/infrastructure/config"
)

func newCORSRouter(cfg CORSConfig) *gin.Engine {
	router := gin.New()
	router.Use(CORS(cfg))
	router.GET("/api/tenants", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestCORS(t *testing.T) {
	t.Run("default config adds no headers for cross-origin request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
		req.Header.Set("Origin", "http://malicious.example")
		w := httptest.NewRecorder()
		newCORSRouter(DefaultCORSConfig()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered with 204 even for unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/tenants", nil)
		req.Header.Set("Origin", "http://malicious.example")
		w := httptest.NewRecorder()
		newCORSRouter(DefaultCORSConfig()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin gets echoed back", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"http://localhost:3000"}

		req := httptest.NewRequest(http.MethodOptions, "/api/tenants", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		newCORSRouter(cfg).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), IdempotencyKeyHeader)
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("wildcard never allows credentials", func(t *testing.T) {
		cfg := CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{http.MethodGet},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		}

		req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		w := httptest.NewRecorder()
		newCORSRouter(cfg).ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestCORSConfigFromHTTP(t *testing.T) {
	cors := CORSConfigFromHTTP(config.HTTPConfig{
		CORSAllowOrigins: []string{"https://billing.example"},
		CORSAllowMethods: []string{http.MethodGet},
	})

	assert.Equal(t, []string{"https://billing.example"}, cors.AllowOrigins)
	assert.Equal(t, []string{http.MethodGet}, cors.AllowMethods)
	assert.Equal(t, DefaultCORSConfig().AllowHeaders, cors.AllowHeaders)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/tenants", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates request ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenants", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
		req.Header.Set(RequestIDHeader, "test-request-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "test-request-id", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-request-id", w.Body.String())
	})

	t.Run("replaces oversized request ID", func(t *testing.T) {
		long := strings.Repeat("a", maxRequestIDLength+1)
		req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
		req.Header.Set(RequestIDHeader, long)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, long, w.Header().Get(RequestIDHeader))
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})
}

func TestSecure(t *testing.T) {
	router := gin.New()
	router.Use(Secure())
	router.GET("/api/tenants", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tenants", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}
