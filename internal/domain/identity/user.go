package identity

import (
	"regexp"
	"strings"
	"sync"

	"github.com/tenantbill/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// placeholderHash is compared against when no user matches a login
var placeholderHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("no-such-user-placeholder"), bcryptCost)
	if err != nil {
		panic("identity: generate placeholder hash: " + err.Error())
	}
	return hash
})

// VerifyPlaceholderPassword spends the same bcrypt work as VerifyPassword
// for a login whose username matched nothing. It always returns false.
func VerifyPlaceholderPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
	return false
}

// User is an operator allowed to sign in to the API
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
}

// NewUser creates a new user and hashes the password
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: hash,
	}, nil
}

// VerifyPassword verifies the provided password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("VALIDATION_REQUIRED", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("VALIDATION_LENGTH", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("VALIDATION_LENGTH", "Username cannot exceed 100 characters")
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewDomainError("VALIDATION_FORMAT", "Username can only contain letters, numbers, underscore, hyphen, and dot")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("VALIDATION_REQUIRED", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("VALIDATION_LENGTH", "Password must be at least 8 characters")
	}
	// bcrypt ignores everything past 72 bytes
	if len(password) > 72 {
		return shared.NewDomainError("VALIDATION_LENGTH", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
