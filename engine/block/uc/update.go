package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

// UpdateInput carries the replacement content for a block. Nil pointers
// leave the corresponding field unchanged; ordering is unaffected either
// way since rank lives on the project.
type UpdateInput struct {
	Checkpoint    *string
	Achievement   *string
	Color         *string
	ReferenceURLs *[]string
	ImgURL        *string
}

// Update edits a block in place.
type Update struct {
	repo Repository
}

func NewUpdate(repo Repository) *Update {
	return &Update{repo: repo}
}

func (uc *Update) Execute(ctx context.Context, id string, in *UpdateInput) (*block.Block, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("failed to look up block: %w", err)
	}
	if in.Checkpoint != nil {
		b.Checkpoint = *in.Checkpoint
	}
	if in.Achievement != nil {
		b.Achievement = *in.Achievement
	}
	if in.Color != nil {
		b.Color = *in.Color
	}
	if in.ReferenceURLs != nil {
		b.ReferenceURLs = *in.ReferenceURLs
	}
	if in.ImgURL != nil {
		b.ImgURL = *in.ImgURL
	}
	updated, err := uc.repo.Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to update block: %w", err)
	}
	return updated, nil
}
