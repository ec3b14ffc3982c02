package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/project"
)

// Get fetches a project by id.
type Get struct {
	repo Repository
}

func NewGet(repo Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id string) (*project.Project, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	return p, nil
}

// List returns a company's projects.
type List struct {
	repo Repository
}

func NewList(repo Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, companyID string) ([]*project.Project, error) {
	projects, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Delete removes a project. Blocks are not cascaded: they remain as rows
// whose owner is gone, invisible to the ordered read path.
type Delete struct {
	repo Repository
}

func NewDelete(repo Repository) *Delete {
	return &Delete{repo: repo}
}

func (uc *Delete) Execute(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up project: %w", err)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
