package uc

import (
	"context"

	"github.com/stepwise-hq/stepwise/engine/project"
)

// Repository defines project persistence operations.
type Repository interface {
	Create(ctx context.Context, name, companyID string, order []string) (*project.Project, error)
	GetByID(ctx context.Context, id string) (*project.Project, error)
	ListByCompany(ctx context.Context, companyID string) ([]*project.Project, error)
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, projectID string, order []string) error
}

// RagRepository defines the reference-document registry operations.
type RagRepository interface {
	Create(ctx context.Context, projectID, storageURL string) (*project.RagDocument, error)
	ListByProject(ctx context.Context, projectID string) ([]*project.RagDocument, error)
}
