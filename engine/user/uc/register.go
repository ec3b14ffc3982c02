package uc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/user"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// RegisterInput carries a registration request. Password is forwarded to
// the identity provider and discarded; it is never persisted.
type RegisterInput struct {
	Email     string
	Password  string
	UserType  user.Type
	CompanyID string
}

// RegisterOutput returns the fresh token alongside the stored profile.
type RegisterOutput struct {
	Token string
	User  *user.User
}

// Register creates a user record plus its identity-provider account.
// Uniqueness on email is checked against the user collection first; the
// provider enforces it a second time on its side.
type Register struct {
	repo     Repository
	provider identity.Provider
}

func NewRegister(repo Repository, provider identity.Provider) *Register {
	return &Register{repo: repo, provider: provider}
}

func (uc *Register) Execute(ctx context.Context, in *RegisterInput) (*RegisterOutput, error) {
	log := logger.FromContext(ctx)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	account, err := uc.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("identity account creation failed: %w", err)
	}
	created, err := uc.repo.Create(ctx, &user.User{
		Email:     in.Email,
		UID:       account.UID,
		UserType:  in.UserType,
		CompanyID: in.CompanyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Info("user registered", "user_id", created.ID, "user_type", created.UserType)
	return &RegisterOutput{Token: account.Token, User: created}, nil
}

// validateInput enforces the user-type invariant: company users must name
// their company, personal users must not.
func validateInput(in *RegisterInput) error {
	if in == nil {
		return fmt.Errorf("%w: missing input", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Password) == "" {
		return fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}
	switch in.UserType {
	case user.TypeCompany:
		if strings.TrimSpace(in.CompanyID) == "" {
			return fmt.Errorf("%w: company users require a company_id", ErrInvalidInput)
		}
	case user.TypePersonal:
		if in.CompanyID != "" {
			return fmt.Errorf("%w: personal users must not carry a company_id", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: user_type must be %q or %q", ErrInvalidInput, user.TypeCompany, user.TypePersonal)
	}
	return nil
}
