package handler

import "time"

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100" example:"admin"`
	Password string `json:"password" binding:"required,max=128" example:"change-me-please"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
