package domain

import (
	"context"
	"time"
)

// User represents a registered account. The password is stored only as a
// bcrypt digest; the plaintext is never persisted or logged.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users. Email uniqueness
// is enforced by the store: Create returns ErrDuplicateEmail when the email
// is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
