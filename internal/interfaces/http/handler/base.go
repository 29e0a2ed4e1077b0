package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"github.com/tenantbill/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

const internalErrorMessage = "An unexpected error occurred"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Created sends a 201 response with a Location header pointing at the new resource
func (h *BaseHandler) Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// BindJSON binds the request body and answers 400 or 413 itself on failure
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleBindError(c, err)
		return false
	}
	return true
}

// ParseID reads an integer path parameter, answering 400 when it does not
// parse. Ids that parse but match nothing are left to the store.
func (h *BaseHandler) ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid "+name+": must be an integer")
		return 0, false
	}
	return id, true
}

// HandleError converts an error into the error envelope. Domain errors keep
// their code and message; anything else is logged and reported as a 500
// without leaking details.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := middleware.GetRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	_ = c.Error(err)
	logger.Enrich(c.Request.Context(), logger.GetGinLogger(c)).Error("Request failed",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal,
		internalErrorMessage,
		requestID,
	))
}

// resourceLocation builds the Location of a resource created by a POST on
// the collection route handling c
func resourceLocation(c *gin.Context, id int64) string {
	return strings.TrimSuffix(c.FullPath(), "/") + "/" + strconv.FormatInt(id, 10)
}
