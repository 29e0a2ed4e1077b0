package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "username"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking tokens revoked by logout
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are exact paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// DefaultJWTConfig exempts the health check, login and API docs under basePath
func DefaultJWTConfig(jwtService *auth.JWTService, basePath string) JWTMiddlewareConfig {
	basePath = strings.TrimRight(basePath, "/")
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			basePath + "/health",
			basePath + "/login",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
		Logger: zap.NewNop(),
	}
}

// JWTAuthMiddleware rejects requests without a valid, unrevoked bearer token
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, cfg.Logger, dto.ErrCodeUnauthorized, "Missing authorization header", nil)
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg.Logger, dto.ErrCodeTokenInvalid, "Invalid authorization header format", nil)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if tokenString == "" {
			abortUnauthorized(c, cfg.Logger, dto.ErrCodeUnauthorized, "Missing token", nil)
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, cfg.Logger, dto.ErrCodeTokenExpired, "Token has expired", err)
				return
			}
			abortUnauthorized(c, cfg.Logger, dto.ErrCodeTokenInvalid, "Invalid token", err)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			abortUnauthorized(c, cfg.Logger, dto.ErrCodeTokenInvalid, "Invalid token", err)
			return
		}

		if cfg.TokenBlacklist != nil && claims.ID != "" {
			revoked, err := cfg.TokenBlacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open; the token itself is still valid
				cfg.Logger.Error("Failed to check token blacklist",
					zap.String("jti", claims.ID),
					zap.Error(err))
			} else if revoked {
				abortUnauthorized(c, cfg.Logger, dto.ErrCodeTokenRevoked, "Token has been revoked", auth.ErrTokenBlacklisted)
				return
			}
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, userID)
		c.Set(JWTUsernameKey, claims.Username)

		ctx := logger.WithUser(c.Request.Context(), strconv.FormatInt(userID, 10), claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, code, message string, err error) {
	log.Warn("JWT authentication failed",
		zap.String("code", code),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code),
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the authenticated user ID, zero when unauthenticated
func GetJWTUserID(c *gin.Context) int64 {
	return c.GetInt64(JWTUserIDKey)
}

// GetJWTUsername retrieves the username from JWT claims in context
func GetJWTUsername(c *gin.Context) string {
	return c.GetString(JWTUsernameKey)
}
