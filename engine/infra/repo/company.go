package repo

import (
	"context"

	"github.com/stepwise-hq/stepwise/engine/company"
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

// CompanyRepo persists companies.
type CompanyRepo struct {
	store store.Store
}

func NewCompanyRepo(s store.Store) *CompanyRepo {
	return &CompanyRepo{store: s}
}

func (r *CompanyRepo) Create(ctx context.Context, name string) (*company.Company, error) {
	rec, err := r.store.Insert(ctx, company.Collection, map[string]any{
		fieldName: name,
	})
	if err != nil {
		return nil, err
	}
	return companyFromRecord(rec), nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*company.Company, error) {
	rec, err := r.store.Get(ctx, company.Collection, id)
	if err != nil {
		return nil, err
	}
	return companyFromRecord(rec), nil
}

func companyFromRecord(rec *store.Record) *company.Company {
	return &company.Company{
		ID:        rec.ID,
		Name:      getString(rec, fieldName),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
