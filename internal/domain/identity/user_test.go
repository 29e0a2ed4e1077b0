package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(" admin ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2a$"))

	assert.True(t, user.VerifyPassword("s3cret-pass"))
	assert.False(t, user.VerifyPassword("wrong-pass"))
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{"empty username", "", "password1", "VALIDATION_REQUIRED"},
		{"short username", "ab", "password1", "VALIDATION_LENGTH"},
		{"bad characters", "bad name!", "password1", "VALIDATION_FORMAT"},
		{"empty password", "admin", "", "VALIDATION_REQUIRED"},
		{"short password", "admin", "short", "VALIDATION_LENGTH"},
		{"long password", "admin", strings.Repeat("p", 73), "VALIDATION_LENGTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.password)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("admin", "first-pass")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("second-pass"))
	assert.True(t, user.VerifyPassword("second-pass"))
	assert.False(t, user.VerifyPassword("first-pass"))

	require.Error(t, user.SetPassword("x"))
	assert.True(t, user.VerifyPassword("second-pass"))
}

func TestVerifyPlaceholderPassword(t *testing.T) {
	assert.False(t, VerifyPlaceholderPassword("no-such-user-placeholder"))
	assert.False(t, VerifyPlaceholderPassword("anything"))

	cost, err := bcrypt.Cost(placeholderHash())
	require.NoError(t, err)
	assert.Equal(t, bcryptCost, cost, "placeholder must cost as much as a real hash")
}
