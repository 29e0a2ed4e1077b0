package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries the client-chosen key of a retryable mutation
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// Idempotency rejects a repeated Idempotency-Key on the same route with 409.
// The key is held for ttl after a successful response and released again when
// the handler fails, so a corrected retry can go through. Requests without the
// header pass untouched. If the store is unavailable the request proceeds.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest, "Idempotency-Key is too long", GetRequestID(c)))
			return
		}

		ctx := c.Request.Context()
		scoped := idempotencyScope(c) + key

		reserved, err := store.Reserve(ctx, scoped, ttl)
		if err != nil {
			logger.Enrich(ctx, log).Warn("Idempotency store unavailable, continuing without key check",
				zap.String("key", key),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !reserved {
			c.AbortWithStatusJSON(dto.GetHTTPStatus(dto.ErrCodeDuplicateRequest), dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest, "A request with this Idempotency-Key was already processed", GetRequestID(c)))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(ctx, scoped); err != nil {
				logger.Enrich(ctx, log).Warn("Failed to release idempotency key",
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}
	}
}

func idempotencyScope(c *gin.Context) string {
	var b strings.Builder
	if userID := GetJWTUserID(c); userID != 0 {
		b.WriteString(strconv.FormatInt(userID, 10))
	}
	b.WriteByte(':')
	b.WriteString(c.Request.Method)
	b.WriteByte(' ')
	b.WriteString(c.Request.URL.Path)
	b.WriteByte(':')
	return b.String()
}
