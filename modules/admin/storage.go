package admin

import (
	"context"
	"time"
)

// User is a staff account record.
type User struct {
	ID           int64
	Email        string
	Name         string
	Role         string
	PasswordHash []byte
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// Storage defines the persistence operations the login flow needs.
type Storage interface {
	// GetUserByEmail returns ErrUserNotFound when no account matches.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}
