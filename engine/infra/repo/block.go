package repo

import (
	"context"

	"github.com/stepwise-hq/stepwise/engine/block"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

// Persisted field names for the blocks collection.
const (
	fieldCheckpoint    = "checkpoint"
	fieldAchievement   = "achievement"
	fieldColor         = "color"
	fieldReferenceURLs = "reference_urls"
	fieldImgURL        = "img_url"
)

// BlockRepo persists blocks.
type BlockRepo struct {
	store store.Store
}

func NewBlockRepo(s store.Store) *BlockRepo {
	return &BlockRepo{store: s}
}

func (r *BlockRepo) Create(ctx context.Context, b *block.Block) (*block.Block, error) {
	rec, err := r.store.Insert(ctx, block.Collection, blockFields(b))
	if err != nil {
		return nil, err
	}
	return blockFromRecord(rec), nil
}

func (r *BlockRepo) GetByID(ctx context.Context, id string) (*block.Block, error) {
	rec, err := r.store.Get(ctx, block.Collection, id)
	if err != nil {
		return nil, err
	}
	return blockFromRecord(rec), nil
}

// ListByProject returns blocks in store-query order; the ordered view is
// assembled by the use case from the project's order list.
func (r *BlockRepo) ListByProject(ctx context.Context, projectID string) ([]*block.Block, error) {
	recs, err := r.store.Find(ctx, block.Collection, store.Eq(fieldProjectID, projectID))
	if err != nil {
		return nil, err
	}
	out := make([]*block.Block, len(recs))
	for i, rec := range recs {
		out[i] = blockFromRecord(rec)
	}
	return out, nil
}

// Update replaces the block's entity fields in place.
func (r *BlockRepo) Update(ctx context.Context, b *block.Block) (*block.Block, error) {
	rec, err := r.store.Update(ctx, block.Collection, b.ID, blockFields(b))
	if err != nil {
		return nil, err
	}
	return blockFromRecord(rec), nil
}

func (r *BlockRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, block.Collection, id)
}

func blockFields(b *block.Block) map[string]any {
	refs := b.ReferenceURLs
	if refs == nil {
		refs = []string{}
	}
	return map[string]any{
		fieldProjectID:     b.ProjectID,
		fieldCheckpoint:    b.Checkpoint,
		fieldAchievement:   b.Achievement,
		fieldColor:         b.Color,
		fieldReferenceURLs: refs,
		fieldImgURL:        b.ImgURL,
	}
}

func blockFromRecord(rec *store.Record) *block.Block {
	return &block.Block{
		ID:            rec.ID,
		ProjectID:     getString(rec, fieldProjectID),
		Checkpoint:    getString(rec, fieldCheckpoint),
		Achievement:   getString(rec, fieldAchievement),
		Color:         getString(rec, fieldColor),
		ReferenceURLs: getStringSlice(rec, fieldReferenceURLs),
		ImgURL:        getString(rec, fieldImgURL),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}
