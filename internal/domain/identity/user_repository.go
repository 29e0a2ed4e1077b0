package identity

import "context"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user; a taken username yields shared.ErrAlreadyExists
	Create(ctx context.Context, user *User) error

	// Update stores a changed password hash
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks if a username already exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
