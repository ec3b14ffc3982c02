package uc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/company"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

var (
	// ErrNotFound is returned when a referenced company id is absent.
	ErrNotFound = errors.New("company not found")
	// ErrInvalidInput is returned for malformed use-case input.
	ErrInvalidInput = errors.New("invalid input")
)

// Repository defines company persistence operations.
type Repository interface {
	Create(ctx context.Context, name string) (*company.Company, error)
	GetByID(ctx context.Context, id string) (*company.Company, error)
}

// Create persists a new company.
type Create struct {
	repo Repository
}

func NewCreate(repo Repository) *Create {
	return &Create{repo: repo}
}

func (uc *Create) Execute(ctx context.Context, name string) (*company.Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	created, err := uc.repo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// Get fetches a company by id.
type Get struct {
	repo Repository
}

func NewGet(repo Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id string) (*company.Company, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}
	return c, nil
}
