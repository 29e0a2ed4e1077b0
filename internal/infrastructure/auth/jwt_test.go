package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/tenantbill/backend/internal/infrastructure/config"
)

const testSecret = "test-secret-key-32-characters-long"

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     testSecret,
		Issuer:     "tenantbill",
		Audience:   "tenantbill-api",
		Expiration: time.Hour,
	}
}

func signClaims(t *testing.T, secret string, claims *auth.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() *auth.Claims {
	now := time.Now()
	return &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Issuer:    "tenantbill",
			Subject:   "7",
			Audience:  jwt.ClaimStrings{"tenantbill-api"},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Username: "admin",
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := auth.NewJWTService(testJWTConfig())

	issued, err := svc.GenerateToken(7, "admin")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(issued.Token, ".")))
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "tenantbill", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"tenantbill-api"}, claims.Audience)
	assert.NotEmpty(t, claims.ID)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Greater(t, claims.GetRemainingTTL(), 59*time.Minute)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := auth.NewJWTService(testJWTConfig())
	a, err := svc.GenerateToken(1, "admin")
	require.NoError(t, err)
	b, err := svc.GenerateToken(1, "admin")
	require.NoError(t, err)

	ca, _ := svc.ValidateToken(a.Token)
	cb, _ := svc.ValidateToken(b.Token)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestJWTService_GenerateToken_RequiresUser(t *testing.T) {
	svc := auth.NewJWTService(testJWTConfig())
	_, err := svc.GenerateToken(0, "admin")
	assert.ErrorIs(t, err, auth.ErrMissingUserID)
}

func TestJWTService_DefaultExpiration(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = 0
	assert.Equal(t, time.Hour, auth.NewJWTService(cfg).Expiration())
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc := auth.NewJWTService(testJWTConfig())

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "garbage",
			token:   func(t *testing.T) string { return "not.a.token" },
			wantErr: auth.ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signClaims(t, "another-secret-key-32-characters-x", validClaims())
			},
			wantErr: auth.ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrExpiredToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = nil
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrInvalidToken,
		},
		{
			name: "not yet valid",
			token: func(t *testing.T) string {
				c := validClaims()
				c.NotBefore = jwt.NewNumericDate(time.Now().Add(10 * time.Minute))
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrTokenNotYetValid,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Issuer = "someone-else"
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrInvalidClaims,
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Audience = jwt.ClaimStrings{"other-api"}
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrInvalidClaims,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Subject = ""
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrMissingUserID,
		},
		{
			name: "missing username",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Username = ""
				return signClaims(t, testSecret, c)
			},
			wantErr: auth.ErrInvalidClaims,
		},
		{
			name: "none algorithm",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tok
			},
			wantErr: auth.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
