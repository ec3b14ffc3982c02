package uc

import (
	"context"
	"errors"

	"github.com/stepwise-hq/stepwise/engine/user"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when the email is already registered.
	ErrEmailExists = errors.New("a user with this email already exists")
	// ErrInvalidInput is returned for malformed registration input.
	ErrInvalidInput = errors.New("invalid input")
)

// Repository defines user persistence operations.
type Repository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByUID(ctx context.Context, uid string) (*user.User, error)
}
