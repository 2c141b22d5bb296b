package repository

import (
	"context"

	"restaurant/entity"
)

type ReservationRepository struct {
	Store Store[entity.Reservation]
}

func NewReservationRepository(store Store[entity.Reservation]) *ReservationRepository {
	return &ReservationRepository{Store: store}
}

func ReservationKey(r entity.Reservation) string { return r.Token }

func (r *ReservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	return r.Store.Insert(ctx, *res)
}

func (r *ReservationRepository) FindByToken(ctx context.Context, token string) (*entity.Reservation, error) {
	res, err := r.Store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]entity.Reservation, error) {
	return r.Store.ListAll(ctx)
}
