package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"restaurant/entity"
	"restaurant/repository"
	"restaurant/utils"
)

// StatusPublisher is told about every order whose status actually changed.
type StatusPublisher interface {
	Publish(o entity.Order)
}

type OrderService struct {
	Repo *repository.OrderRepository
	Menu *repository.MenuRepository

	// Strict enforces the status transition table; off, any valid status overwrites.
	Strict    bool
	Publisher StatusPublisher

	now func() time.Time
}

func NewOrderService(repo *repository.OrderRepository, menu *repository.MenuRepository, strict bool, pub StatusPublisher) *OrderService {
	return &OrderService{Repo: repo, Menu: menu, Strict: strict, Publisher: pub, now: time.Now}
}

// MaxQuantity caps a single cart line; it keeps every total far inside int64.
const MaxQuantity = 1000

type CreateOrderInput struct {
	Items         []entity.CartEntry
	Customer      entity.Customer
	PaymentMethod string
}

func (in *CreateOrderInput) validate() error {
	if len(in.Items) == 0 {
		return invalid("items", "cart is empty")
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return invalid("items", "quantity must be at least 1")
		}
		if it.Quantity > MaxQuantity {
			return invalid("items", fmt.Sprintf("quantity must be at most %d", MaxQuantity))
		}
	}
	c := in.Customer
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Phone) == "" {
		return invalid("customer", "customer info is required")
	}
	return nil
}

// CalculateTotal prices the cart against the catalog. Unknown item ids add nothing.
func (s *OrderService) CalculateTotal(items []entity.CartEntry) int64 {
	var total int64
	for _, it := range items {
		m, ok := s.Menu.FindByID(it.ItemID)
		if !ok {
			continue
		}
		total += m.PriceCents * int64(it.Quantity)
	}
	return total
}

func (s *OrderService) Create(ctx context.Context, in *CreateOrderInput) (*entity.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	method := entity.ParsePaymentMethod(in.PaymentMethod)
	status := entity.OrderPreparing
	if method == entity.PaymentCard {
		status = entity.OrderPending
	}

	items := make([]entity.CartEntry, len(in.Items))
	copy(items, in.Items)

	order := entity.Order{
		ID:       utils.NewID(),
		Items:    items,
		Customer: trimCustomer(in.Customer),

		TotalCents:    s.CalculateTotal(items),
		Status:        status,
		PaymentMethod: method,
		CreatedAt:     s.now().UTC(),
	}

	// retry on a token clash
	for attempt := 0; ; attempt++ {
		tok, err := utils.NewToken()
		if err != nil {
			return nil, err
		}
		order.Token = tok
		err = s.Repo.Create(ctx, &order)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt == 2 {
			return nil, err
		}
	}

	log.Info().
		Str("token", order.Token).
		Str("payment", string(order.PaymentMethod)).
		Str("status", string(order.Status)).
		Str("total", utils.FormatCents(order.TotalCents)).
		Int("lines", len(order.Items)).
		Msg("order created")
	return &order, nil
}

func (s *OrderService) Get(ctx context.Context, token string) (*entity.Order, error) {
	return s.Repo.FindByToken(ctx, token)
}

// List returns every order, newest first.
func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func trimCustomer(c entity.Customer) entity.Customer {
	return entity.Customer{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}
