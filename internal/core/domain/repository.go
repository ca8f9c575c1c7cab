package domain

import "context"

type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by email, used during login.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile and calendar-config changes.
	Update(ctx context.Context, user *User) error
}
