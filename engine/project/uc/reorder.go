package uc

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// Reorder replaces a project's block order list with the caller-supplied
// sequence after confirming the project exists.
//
// By default the write is deliberately unguarded: the new list is stored
// verbatim, with no check that it is a permutation of the current order,
// references existing blocks, or is duplicate-free. The read side skips
// dangling entries, so a sloppy reorder degrades display order but never
// breaks reads. WithValidatedReorder turns on same-set permutation
// checking for deployments that want the hardened behavior.
type Reorder struct {
	repo     Repository
	validate bool
}

// ReorderOption configures the Reorder use case.
type ReorderOption func(*Reorder)

// WithValidatedReorder enforces that the new order is a duplicate-free
// permutation of the current order list.
func WithValidatedReorder() ReorderOption {
	return func(uc *Reorder) { uc.validate = true }
}

func NewReorder(repo Repository, opts ...ReorderOption) *Reorder {
	uc := &Reorder{repo: repo}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *Reorder) Execute(ctx context.Context, projectID string, newOrder []string) error {
	p, err := uc.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up project: %w", err)
	}
	if uc.validate {
		if err := checkPermutation(p.BlockOrderIDs, newOrder); err != nil {
			return err
		}
	}
	if err := uc.repo.SetOrder(ctx, projectID, newOrder); err != nil {
		return fmt.Errorf("failed to store new block order: %w", err)
	}
	logger.FromContext(ctx).Debug("block order replaced",
		"project_id", projectID, "blocks", len(newOrder))
	return nil
}

func checkPermutation(current, next []string) error {
	if len(current) != len(next) {
		return fmt.Errorf("%w: got %d ids, want %d", ErrOrderMismatch, len(next), len(current))
	}
	seen := make(map[string]bool, len(next))
	for _, id := range next {
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %s", ErrOrderMismatch, id)
		}
		seen[id] = true
	}
	a := append([]string(nil), current...)
	b := append([]string(nil), next...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("%w: id %s is not part of the current order", ErrOrderMismatch, b[i])
		}
	}
	return nil
}
