package identity

import (
	"context"
	"errors"
)

// Errors surfaced by identity providers. The provider is the system of
// record for credentials; this service never stores passwords.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Account is the provider-side identity bound to a user record.
type Account struct {
	UID   string
	Token string
}

// Provider issues and verifies bearer tokens bound to a subject (uid).
type Provider interface {
	// SignUp creates a provider account and returns its uid plus a fresh token.
	SignUp(ctx context.Context, email, password string) (*Account, error)

	// SignIn exchanges credentials for a fresh token on an existing account.
	SignIn(ctx context.Context, email, password string) (*Account, error)

	// Verify checks a bearer token and returns the uid it is bound to.
	Verify(ctx context.Context, token string) (string, error)
}
