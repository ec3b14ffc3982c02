package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// Delete removes a block and unregisters it from the owning project's
// order list. Removal from the order is an exact-match filter: an id that
// is already absent is a no-op, not an error.
type Delete struct {
	repo   Repository
	orders OrderIndex
}

func NewDelete(repo Repository, orders OrderIndex) *Delete {
	return &Delete{repo: repo, orders: orders}
}

func (uc *Delete) Execute(ctx context.Context, id string) error {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBlockNotFound
		}
		return fmt.Errorf("failed to look up block: %w", err)
	}
	if b.ProjectID != "" {
		if err := uc.removeFromOrder(ctx, b.ProjectID, id); err != nil {
			return err
		}
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}
	return nil
}

func (uc *Delete) removeFromOrder(ctx context.Context, projectID, blockID string) error {
	log := logger.FromContext(ctx)
	order, err := uc.orders.GetOrder(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("block owner project not found; skipping order removal",
				"block_id", blockID, "project_id", projectID)
			return nil
		}
		return fmt.Errorf("failed to read project order: %w", err)
	}
	filtered := make([]string, 0, len(order))
	for _, id := range order {
		if id != blockID {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) == len(order) {
		return nil
	}
	if err := uc.orders.SetOrder(ctx, projectID, filtered); err != nil {
		return fmt.Errorf("failed to remove block from project order: %w", err)
	}
	return nil
}
