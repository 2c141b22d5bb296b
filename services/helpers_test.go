package services

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurant/data"
	"restaurant/entity"
	"restaurant/repository"
)

type spyPublisher struct {
	mu  sync.Mutex
	got []entity.Order
}

func (p *spyPublisher) Publish(o entity.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, o)
}

func (p *spyPublisher) statuses() []entity.OrderStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.OrderStatus, 0, len(p.got))
	for _, o := range p.got {
		out = append(out, o.Status)
	}
	return out
}

func newTestOrderService(t *testing.T, strict bool) (*OrderService, *spyPublisher) {
	t.Helper()
	menu, err := repository.NewMenuRepository(data.MenuJSON)
	require.NoError(t, err)
	store := repository.NewJSONStore(filepath.Join(t.TempDir(), "orders.json"), repository.OrderKey)
	pub := &spyPublisher{}
	return NewOrderService(repository.NewOrderRepository(store), menu, strict, pub), pub
}

func validCustomer() entity.Customer {
	return entity.Customer{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 98450 00000"}
}
