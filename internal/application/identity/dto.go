package identity

import "time"

// LoginInput contains the credentials submitted to POST /login
type LoginInput struct {
	Username string
	Password string
	IP       string // Client IP, logged only
}

// LoginResult carries the issued bearer token
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// LogoutInput identifies the token being revoked
type LogoutInput struct {
	UserID    int64
	TokenJTI  string
	ExpiresAt time.Time
}

// CreateUserInput contains the fields for a new operator account
type CreateUserInput struct {
	Username string
	Password string
}

// UserDTO is the public view of a user; the password hash never leaves the service
type UserDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
