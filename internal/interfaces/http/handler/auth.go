package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/application/identity"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"github.com/tenantbill/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
// @ID           login
// @Summary      User login
// @Description  Authenticate with username and password and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout godoc
// @ID           logout
// @Summary      User logout
// @Description  Revoke the presented bearer token until it expires
// @Tags         auth
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
		return
	}

	err := h.authService.Logout(c.Request.Context(), identity.LogoutInput{
		UserID:    middleware.GetJWTUserID(c),
		TokenJTI:  claims.ID,
		ExpiresAt: claims.GetExpiresAtTime(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
