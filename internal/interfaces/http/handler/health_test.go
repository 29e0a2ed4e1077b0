package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name     string
		ping     error
		status   int
		database string
	}{
		{"database up", nil, http.StatusOK, "up"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDeadline bool
			h := NewHealthHandler(pingFunc(func(ctx context.Context) error {
				_, gotDeadline = ctx.Deadline()
				return tt.ping
			}))
			router := newTestRouter()
			router.GET("/health", h.Check)

			w := doJSON(router, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, gotDeadline)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.database, resp.Database)
			assert.NotEmpty(t, resp.Time)
		})
	}
}
