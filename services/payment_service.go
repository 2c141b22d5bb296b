package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/rs/zerolog/log"

	"restaurant/entity"
	"restaurant/repository"
)

const (
	ProviderStripe = "stripe"
	ProviderMock   = "mock"
)

type PaymentInfo struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// PaymentService stands in for a hosted checkout. No gateway is ever called;
// a configured key only changes the advertised provider.
type PaymentService struct {
	Orders   *OrderService
	Provider string
}

func NewPaymentService(orders *OrderService, stripeKey string) *PaymentService {
	p := ProviderMock
	if stripeKey != "" {
		p = ProviderStripe
	}
	return &PaymentService{Orders: orders, Provider: p}
}

// CheckoutInfo is nil for cash on delivery.
func (s *PaymentService) CheckoutInfo(o *entity.Order) *PaymentInfo {
	if o.PaymentMethod != entity.PaymentCard {
		return nil
	}
	return &PaymentInfo{
		Provider: s.Provider,
		URL:      "/payment?orderToken=" + url.QueryEscape(o.Token),
	}
}

// Simulate plays the gateway's return leg and reports where to send the caller.
func (s *PaymentService) Simulate(ctx context.Context, token string) (string, error) {
	const cancelled = "/checkout?cancelled=1"
	if token == "" {
		return cancelled, nil
	}
	o, err := s.Orders.Get(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return cancelled, nil
	}
	if err != nil {
		return "", err
	}
	if _, err := s.Orders.MarkPaid(ctx, o.Token); err != nil {
		return "", err
	}
	log.Info().Str("token", o.Token).Str("provider", s.Provider).Msg("payment simulated")
	return "/order/" + url.PathEscape(o.Token), nil
}
