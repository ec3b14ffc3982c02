package uc

import (
	"context"
	"fmt"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/project"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// CreateInput carries the fields for a new project. BlockOrderIDs may be
// supplied by the caller; it defaults to empty.
type CreateInput struct {
	Name          string
	CompanyID     string
	BlockOrderIDs []string
}

// Create persists a new project.
type Create struct {
	repo Repository
}

func NewCreate(repo Repository) *Create {
	return &Create{repo: repo}
}

func (uc *Create) Execute(ctx context.Context, in *CreateInput) (*project.Project, error) {
	if in == nil || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	created, err := uc.repo.Create(ctx, in.Name, in.CompanyID, in.BlockOrderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	logger.FromContext(ctx).Info("project created", "project_id", created.ID, "company_id", created.CompanyID)
	return created, nil
}
