package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects bodies larger than maxBytes with 413. Bodies without a
// Content-Length are capped while reading; handlers see the read error.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			AbortRequestTooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// AbortRequestTooLarge answers 413 with the standard error envelope
func AbortRequestTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeRequestTooLarge,
			"Request body exceeds maximum allowed size", GetRequestID(c)))
}
