package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

// Get fetches a single block by id.
type Get struct {
	repo Repository
}

func NewGet(repo Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id string) (*block.Block, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("failed to look up block: %w", err)
	}
	return b, nil
}
