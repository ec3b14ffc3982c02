package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

// ListByProject returns a project's blocks in display order: first the
// blocks referenced by the order list (walking it in order, silently
// skipping dangling ids whose block no longer exists), then any blocks
// absent from the order list, in store-query order. The read never
// mutates the order list; drift between the two is tolerated here.
type ListByProject struct {
	repo   Repository
	orders OrderIndex
}

func NewListByProject(repo Repository, orders OrderIndex) *ListByProject {
	return &ListByProject{repo: repo, orders: orders}
}

func (uc *ListByProject) Execute(ctx context.Context, projectID string) ([]*block.Block, error) {
	order, err := uc.orders.GetOrder(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to read project order: %w", err)
	}
	blocks, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	byID := make(map[string]*block.Block, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}
	out := make([]*block.Block, 0, len(blocks))
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			continue
		}
		seen[id] = true
		if b, ok := byID[id]; ok {
			out = append(out, b)
		}
	}
	for _, b := range blocks {
		if !seen[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}
