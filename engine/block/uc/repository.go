package uc

import (
	"context"

	"github.com/stepwise-hq/stepwise/engine/block"
)

// Repository defines block persistence operations.
type Repository interface {
	Create(ctx context.Context, b *block.Block) (*block.Block, error)
	GetByID(ctx context.Context, id string) (*block.Block, error)
	ListByProject(ctx context.Context, projectID string) ([]*block.Block, error)
	Update(ctx context.Context, b *block.Block) (*block.Block, error)
	Delete(ctx context.Context, id string) error
}

// OrderIndex exposes the owning project's block order list. The order is
// a derived index stored on the project record; every mutation here is a
// separate, non-transactional write relative to the block row.
type OrderIndex interface {
	// GetOrder returns the current order list, or store.ErrNotFound when
	// the project does not exist.
	GetOrder(ctx context.Context, projectID string) ([]string, error)

	// SetOrder overwrites the order list verbatim.
	SetOrder(ctx context.Context, projectID string, order []string) error
}
