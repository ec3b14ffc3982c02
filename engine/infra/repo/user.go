package repo

import (
	"context"

	"github.com/stepwise-hq/stepwise/engine/infra/store"
	"github.com/stepwise-hq/stepwise/engine/user"
)

// Persisted field names for the users collection.
const (
	fieldEmail    = "email"
	fieldUID      = "uid"
	fieldUserType = "user_type"
)

// UserRepo persists user profiles. Passwords never reach this layer.
type UserRepo struct {
	store store.Store
}

func NewUserRepo(s store.Store) *UserRepo {
	return &UserRepo{store: s}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	rec, err := r.store.Insert(ctx, user.Collection, map[string]any{
		fieldEmail:     u.Email,
		fieldUID:       u.UID,
		fieldUserType:  string(u.UserType),
		fieldCompanyID: u.CompanyID,
	})
	if err != nil {
		return nil, err
	}
	return userFromRecord(rec), nil
}

// GetByEmail returns store.ErrNotFound when no user has the email; email
// is globally unique, so the first match wins.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	recs, err := r.store.Find(ctx, user.Collection, store.Eq(fieldEmail, email))
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, store.ErrNotFound
	}
	return userFromRecord(recs[0]), nil
}

// GetByUID resolves the identity-provider subject to the user profile.
func (r *UserRepo) GetByUID(ctx context.Context, uid string) (*user.User, error) {
	recs, err := r.store.Find(ctx, user.Collection, store.Eq(fieldUID, uid))
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, store.ErrNotFound
	}
	return userFromRecord(recs[0]), nil
}

func userFromRecord(rec *store.Record) *user.User {
	return &user.User{
		ID:        rec.ID,
		Email:     getString(rec, fieldEmail),
		UID:       getString(rec, fieldUID),
		UserType:  user.Type(getString(rec, fieldUserType)),
		CompanyID: getString(rec, fieldCompanyID),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
