package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/infrastructure/telemetry"
)

// Profiling labels profiling samples taken while a request is handled with
// its method and route pattern, so profiles can be split per endpoint.
// Unmatched routes are not labelled.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			c.Next()
			return
		}

		labels := map[string]string{
			telemetry.ProfilingLabelMethod: c.Request.Method,
			telemetry.ProfilingLabelRoute:  route,
		}
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
