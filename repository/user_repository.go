package repository

import (
	"context"
	"strings"

	"restaurant/entity"
)

type UserRepository struct {
	Store Store[entity.User]
}

func NewUserRepository(store Store[entity.User]) *UserRepository {
	return &UserRepository{Store: store}
}

func UserKey(u entity.User) string { return u.Email }

// Create fails with ErrDuplicate when the email is taken.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.Store.Insert(ctx, *u)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.Store.Get(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	_, err := r.FindByEmail(ctx, email)
	switch err {
	case nil:
		return 1, nil
	case ErrNotFound:
		return 0, nil
	default:
		return 0, err
	}
}
