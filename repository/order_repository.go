package repository

import (
	"context"

	"restaurant/entity"
)

type OrderRepository struct {
	Store Store[entity.Order]
}

func NewOrderRepository(store Store[entity.Order]) *OrderRepository {
	return &OrderRepository{Store: store}
}

func OrderKey(o entity.Order) string { return o.Token }

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return r.Store.Insert(ctx, *o)
}

func (r *OrderRepository) FindByToken(ctx context.Context, token string) (*entity.Order, error) {
	o, err := r.Store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List is a full scan in storage order.
func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	return r.Store.ListAll(ctx)
}

// UpdateStatus computes the next status from the stored one inside the
// store's write lock. Returning the current status skips the write.
func (r *OrderRepository) UpdateStatus(ctx context.Context, token string, next func(cur entity.OrderStatus) (entity.OrderStatus, error)) (*entity.Order, bool, error) {
	changed := false
	o, err := r.Store.Update(ctx, token, func(o *entity.Order) error {
		to, err := next(o.Status)
		if err != nil {
			return err
		}
		if to == o.Status {
			return ErrUnchanged
		}
		o.Status = to
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &o, changed, nil
}

// UpdateStatusFromTo moves the order only when it currently sits in from.
func (r *OrderRepository) UpdateStatusFromTo(ctx context.Context, token string, from, to entity.OrderStatus) (*entity.Order, bool, error) {
	return r.UpdateStatus(ctx, token, func(cur entity.OrderStatus) (entity.OrderStatus, error) {
		if cur != from {
			return cur, nil
		}
		return to, nil
	})
}
