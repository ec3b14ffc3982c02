package uc

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// CreateInput carries the fields for a new block.
type CreateInput struct {
	ProjectID     string
	Checkpoint    string
	Achievement   string
	Color         string
	ReferenceURLs []string
	ImgURL        string
}

// Create persists a new block and registers it in the owning project's
// order list. The two writes are independent: a failed or missing project
// never rolls back the created block (the read side tolerates the drift).
type Create struct {
	repo   Repository
	orders OrderIndex
}

func NewCreate(repo Repository, orders OrderIndex) *Create {
	return &Create{repo: repo, orders: orders}
}

func (uc *Create) Execute(ctx context.Context, in *CreateInput) (*block.Block, error) {
	if in == nil || strings.TrimSpace(in.ProjectID) == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrInvalidInput)
	}
	created, err := uc.repo.Create(ctx, &block.Block{
		ProjectID:     in.ProjectID,
		Checkpoint:    in.Checkpoint,
		Achievement:   in.Achievement,
		Color:         in.Color,
		ReferenceURLs: in.ReferenceURLs,
		ImgURL:        in.ImgURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create block: %w", err)
	}
	if err := uc.appendToOrder(ctx, in.ProjectID, created.ID); err != nil {
		return nil, err
	}
	return created, nil
}

// appendToOrder appends the block id to the project order if not already
// present. A missing project is logged and tolerated: the block stays as
// an orphan outside the order list.
func (uc *Create) appendToOrder(ctx context.Context, projectID, blockID string) error {
	log := logger.FromContext(ctx)
	order, err := uc.orders.GetOrder(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("block created for unknown project; skipping order append",
				"block_id", blockID, "project_id", projectID)
			return nil
		}
		return fmt.Errorf("failed to read project order: %w", err)
	}
	if slices.Contains(order, blockID) {
		return nil
	}
	if err := uc.orders.SetOrder(ctx, projectID, append(order, blockID)); err != nil {
		return fmt.Errorf("failed to append block to project order: %w", err)
	}
	return nil
}
