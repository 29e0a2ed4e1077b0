package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tenantbill/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing subject in claims")
	ErrTokenBlacklisted = errors.New("token has been revoked")
)

// Claims are the bearer token claims.
// Subject carries the user ID; Username names the authenticated principal.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// UserID parses the subject as a user ID
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrMissingUserID
	}
	return id, nil
}

// GetExpiresAtTime returns the expiration time, zero if unset
func (c *Claims) GetExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// GetRemainingTTL returns how long the token stays valid, never negative
func (c *Claims) GetRemainingTTL() time.Duration {
	ttl := time.Until(c.GetExpiresAtTime())
	if ttl < 0 {
		return 0
	}
	return ttl
}

// IssuedToken is a signed token and its expiry
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// JWTService signs and verifies HS256 bearer tokens
type JWTService struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
	now        func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = time.Hour
	}
	return &JWTService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken issues a token for the given user
func (s *JWTService) GenerateToken(userID int64, username string) (*IssuedToken, error) {
	if userID <= 0 {
		return nil, ErrMissingUserID
	}

	now := s.now()
	expiresAt := now.Add(s.expiration)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies signature, expiry, issuer and audience and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrInvalidClaims
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	if claims.Username == "" || claims.ID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// Expiration returns the configured token lifetime
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}
