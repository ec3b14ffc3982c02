package repo

import (
	"context"

	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/project"
)

// Persisted field names for the projects and rag_documents collections.
const (
	fieldName          = "name"
	fieldCompanyID     = "company_id"
	fieldBlockOrderIDs = "block_order_ids"
	fieldProjectID     = "projectId"
	fieldStorageURL    = "storage_url"
)

// ProjectRepo persists projects and their derived block order index.
type ProjectRepo struct {
	store store.Store
}

func NewProjectRepo(s store.Store) *ProjectRepo {
	return &ProjectRepo{store: s}
}

func (r *ProjectRepo) Create(ctx context.Context, name, companyID string, order []string) (*project.Project, error) {
	if order == nil {
		order = []string{}
	}
	rec, err := r.store.Insert(ctx, project.Collection, map[string]any{
		fieldName:          name,
		fieldCompanyID:     companyID,
		fieldBlockOrderIDs: order,
	})
	if err != nil {
		return nil, err
	}
	return projectFromRecord(rec), nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*project.Project, error) {
	rec, err := r.store.Get(ctx, project.Collection, id)
	if err != nil {
		return nil, err
	}
	return projectFromRecord(rec), nil
}

func (r *ProjectRepo) ListByCompany(ctx context.Context, companyID string) ([]*project.Project, error) {
	recs, err := r.store.Find(ctx, project.Collection, store.Eq(fieldCompanyID, companyID))
	if err != nil {
		return nil, err
	}
	out := make([]*project.Project, len(recs))
	for i, rec := range recs {
		out[i] = projectFromRecord(rec)
	}
	return out, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, project.Collection, id)
}

// GetOrder returns the project's block order list.
func (r *ProjectRepo) GetOrder(ctx context.Context, projectID string) ([]string, error) {
	p, err := r.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return p.BlockOrderIDs, nil
}

// SetOrder overwrites the project's block order list verbatim.
func (r *ProjectRepo) SetOrder(ctx context.Context, projectID string, order []string) error {
	if order == nil {
		order = []string{}
	}
	_, err := r.store.Update(ctx, project.Collection, projectID, map[string]any{
		fieldBlockOrderIDs: order,
	})
	return err
}

func projectFromRecord(rec *store.Record) *project.Project {
	return &project.Project{
		ID:            rec.ID,
		Name:          getString(rec, fieldName),
		CompanyID:     getString(rec, fieldCompanyID),
		BlockOrderIDs: orDefault(getStringSlice(rec, fieldBlockOrderIDs)),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func orDefault(order []string) []string {
	if order == nil {
		return []string{}
	}
	return order
}

// RagRepo persists the project/reference-document registry.
type RagRepo struct {
	store store.Store
}

func NewRagRepo(s store.Store) *RagRepo {
	return &RagRepo{store: s}
}

func (r *RagRepo) Create(ctx context.Context, projectID, storageURL string) (*project.RagDocument, error) {
	rec, err := r.store.Insert(ctx, project.RagCollection, map[string]any{
		fieldProjectID:  projectID,
		fieldStorageURL: storageURL,
	})
	if err != nil {
		return nil, err
	}
	return ragFromRecord(rec), nil
}

func (r *RagRepo) ListByProject(ctx context.Context, projectID string) ([]*project.RagDocument, error) {
	recs, err := r.store.Find(ctx, project.RagCollection, store.Eq(fieldProjectID, projectID))
	if err != nil {
		return nil, err
	}
	out := make([]*project.RagDocument, len(recs))
	for i, rec := range recs {
		out[i] = ragFromRecord(rec)
	}
	return out, nil
}

func ragFromRecord(rec *store.Record) *project.RagDocument {
	return &project.RagDocument{
		ID:         rec.ID,
		ProjectID:  getString(rec, fieldProjectID),
		StorageURL: getString(rec, fieldStorageURL),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
