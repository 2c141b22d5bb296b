package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"restaurant/entity"
)

// SetStatus moves an order to status. Asking for the current status is a no-op.
func (s *OrderService) SetStatus(ctx context.Context, token, status string) (*entity.Order, error) {
	to, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	o, changed, err := s.Repo.UpdateStatus(ctx, token, func(cur entity.OrderStatus) (entity.OrderStatus, error) {
		if s.Strict && !cur.CanTransitionTo(to) {
			return cur, &entity.TransitionError{From: cur, To: to}
		}
		return to, nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.statusChanged(o)
	}
	return o, nil
}

// MarkPaid moves a pending order to preparing and leaves every other status alone.
func (s *OrderService) MarkPaid(ctx context.Context, token string) (*entity.Order, error) {
	o, changed, err := s.Repo.UpdateStatusFromTo(ctx, token, entity.OrderPending, entity.OrderPreparing)
	if err != nil {
		return nil, err
	}
	if changed {
		s.statusChanged(o)
	}
	return o, nil
}

func (s *OrderService) statusChanged(o *entity.Order) {
	log.Info().Str("token", o.Token).Str("status", string(o.Status)).Msg("order status changed")
	if s.Publisher != nil {
		s.Publisher.Publish(*o)
	}
}
