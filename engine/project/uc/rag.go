package uc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/project"
)

// RegisterRagDocument records an uploaded reference document URL against a
// project. The blob itself lives in external object storage; only the URL
// is persisted.
type RegisterRagDocument struct {
	projects Repository
	rags     RagRepository
}

func NewRegisterRagDocument(projects Repository, rags RagRepository) *RegisterRagDocument {
	return &RegisterRagDocument{projects: projects, rags: rags}
}

func (uc *RegisterRagDocument) Execute(ctx context.Context, projectID, storageURL string) (*project.RagDocument, error) {
	if strings.TrimSpace(storageURL) == "" {
		return nil, fmt.Errorf("%w: storage_url must not be empty", ErrInvalidInput)
	}
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	doc, err := uc.rags.Create(ctx, projectID, storageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to register rag document: %w", err)
	}
	return doc, nil
}

// ListRagDocuments returns the reference documents registered for a project.
type ListRagDocuments struct {
	projects Repository
	rags     RagRepository
}

func NewListRagDocuments(projects Repository, rags RagRepository) *ListRagDocuments {
	return &ListRagDocuments{projects: projects, rags: rags}
}

func (uc *ListRagDocuments) Execute(ctx context.Context, projectID string) ([]*project.RagDocument, error) {
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	docs, err := uc.rags.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rag documents: %w", err)
	}
	return docs, nil
}
