package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/user"
)

// LoginOutput returns a fresh token plus the user summary.
type LoginOutput struct {
	Token string
	User  *user.User
}

// Login exchanges credentials for a fresh bearer token.
type Login struct {
	repo     Repository
	provider identity.Provider
}

func NewLogin(repo Repository, provider identity.Provider) *Login {
	return &Login{repo: repo, provider: provider}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginOutput, error) {
	account, err := uc.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("identity sign-in failed: %w", err)
	}
	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &LoginOutput{Token: account.Token, User: u}, nil
}

// Profile resolves the verified identity subject to the caller's profile.
type Profile struct {
	repo Repository
}

func NewProfile(repo Repository) *Profile {
	return &Profile{repo: repo}
}

func (uc *Profile) Execute(ctx context.Context, uid string) (*user.User, error) {
	u, err := uc.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return u, nil
}
