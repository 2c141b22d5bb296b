package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/entity"
	"restaurant/repository"
)

func TestOrderService_Create_TotalFromCatalog(t *testing.T) {
	svc, _ := newTestOrderService(t, true)
	ctx := context.Background()

	o, err := svc.Create(ctx, &CreateOrderInput{
		Items:         []entity.CartEntry{{ItemID: "butter-chicken", Quantity: 2}},
		Customer:      validCustomer(),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(90000), o.TotalCents)
	assert.NotEmpty(t, o.ID)
	assert.NotEmpty(t, o.Token)
	assert.NotEqual(t, o.ID, o.Token)

	got, err := svc.Get(ctx, o.Token)
	require.NoError(t, err)
	assert.Equal(t, o.Token, got.Token)
	assert.Equal(t, int64(90000), got.TotalCents)
}

func TestOrderService_Create_QuantityAtCap(t *testing.T) {
	svc, _ := newTestOrderService(t, true)

	o, err := svc.Create(context.Background(), &CreateOrderInput{
		Items:    []entity.CartEntry{{ItemID: "butter-chicken", Quantity: MaxQuantity}},
		Customer: validCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(45000*MaxQuantity), o.TotalCents)
}

func TestOrderService_Create_MixedCartAndUnknownItems(t *testing.T) {
	svc, _ := newTestOrderService(t, true)

	items := []entity.CartEntry{
		{ItemID: "butter-chicken", Quantity: 1},
		{ItemID: "garlic-naan", Quantity: 3},
		{ItemID: "does-not-exist", Quantity: 5},
	}
	want := int64(45000 + 3*7000)
	assert.Equal(t, want, svc.CalculateTotal(items))

	o, err := svc.Create(context.Background(), &CreateOrderInput{Items: items, Customer: validCustomer()})
	require.NoError(t, err)
	assert.Equal(t, want, o.TotalCents)
	assert.Len(t, o.Items, 3)
}

func TestOrderService_Create_InitialStatusByPaymentMethod(t *testing.T) {
	svc, _ := newTestOrderService(t, true)
	ctx := context.Background()
	items := []entity.CartEntry{{ItemID: "masala-chai", Quantity: 1}}

	card, err := svc.Create(ctx, &CreateOrderInput{Items: items, Customer: validCustomer(), PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, card.Status)
	assert.Equal(t, entity.PaymentCard, card.PaymentMethod)

	cod, err := svc.Create(ctx, &CreateOrderInput{Items: items, Customer: validCustomer(), PaymentMethod: "cod"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, cod.Status)
	assert.Equal(t, entity.PaymentCOD, cod.PaymentMethod)

	other, err := svc.Create(ctx, &CreateOrderInput{Items: items, Customer: validCustomer(), PaymentMethod: "upi"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCard, other.PaymentMethod)
}

func TestOrderService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   CreateOrderInput
	}{
		{"empty cart", CreateOrderInput{Customer: validCustomer()}},
		{"zero quantity", CreateOrderInput{Items: []entity.CartEntry{{ItemID: "rasmalai", Quantity: 0}}, Customer: validCustomer()}},
		{"quantity over cap", CreateOrderInput{Items: []entity.CartEntry{{ItemID: "butter-chicken", Quantity: MaxQuantity + 1}}, Customer: validCustomer()}},
		{"quantity that would overflow", CreateOrderInput{Items: []entity.CartEntry{{ItemID: "butter-chicken", Quantity: 204963823041218}}, Customer: validCustomer()}},
		{"missing name", CreateOrderInput{Items: []entity.CartEntry{{ItemID: "rasmalai", Quantity: 1}}, Customer: entity.Customer{Email: "a@b.c", Phone: "1"}}},
		{"blank phone", CreateOrderInput{Items: []entity.CartEntry{{ItemID: "rasmalai", Quantity: 1}}, Customer: entity.Customer{Name: "A", Email: "a@b.c", Phone: "  "}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestOrderService(t, true)
			ctx := context.Background()

			_, err := svc.Create(ctx, &tt.in)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)

			all, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestOrderService_PriceSnapshot(t *testing.T) {
	svc, _ := newTestOrderService(t, true)
	ctx := context.Background()

	o, err := svc.Create(ctx, &CreateOrderInput{
		Items:    []entity.CartEntry{{ItemID: "butter-chicken", Quantity: 1}},
		Customer: validCustomer(),
	})
	require.NoError(t, err)

	// a repriced catalog must not touch stored orders
	repriced, err := repository.NewMenuRepository([]byte(`[{"id":"butter-chicken","priceCents":99900}]`))
	require.NoError(t, err)
	svc.Menu = repriced

	got, err := svc.Get(ctx, o.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), got.TotalCents)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	svc, _ := newTestOrderService(t, true)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderService_List_NewestFirst(t *testing.T) {
	svc, _ := newTestOrderService(t, true)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var tokens []string
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return at }
		o, err := svc.Create(ctx, &CreateOrderInput{
			Items:    []entity.CartEntry{{ItemID: "masala-chai", Quantity: 1}},
			Customer: validCustomer(),
		})
		require.NoError(t, err)
		tokens = append(tokens, o.Token)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, tokens[2], all[0].Token)
	assert.Equal(t, tokens[0], all[2].Token)
}
