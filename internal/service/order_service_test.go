package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/events"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

type fakeClientRepository struct {
	clients map[string]*domain.Client
}

func (r *fakeClientRepository) Create(_ context.Context, client *domain.Client) error {
	client.ID = uuid.NewString()
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepository) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepository) GetByID(_ context.Context, id string) (*domain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return client, nil
}

func (r *fakeClientRepository) List(_ context.Context, limit, offset int) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeOrderRepository struct {
	orders map[string]*domain.Order
}

func (r *fakeOrderRepository) Create(_ context.Context, order *domain.Order) error {
	order.ID = uuid.NewString()
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepository) Update(_ context.Context, order *domain.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepository) List(_ context.Context, limit, offset int) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		copied := *o
		out = append(out, &copied)
	}
	return out, nil
}

type fakeOrderItemRepository struct {
	items map[string]*domain.OrderItem
}

func (r *fakeOrderItemRepository) Create(_ context.Context, item *domain.OrderItem) error {
	item.ID = uuid.NewString()
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeOrderItemRepository) Update(_ context.Context, item *domain.OrderItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeOrderItemRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeOrderItemRepository) GetByID(_ context.Context, id string) (*domain.OrderItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (r *fakeOrderItemRepository) ListByOrder(_ context.Context, orderID string) ([]*domain.OrderItem, error) {
	out := make([]*domain.OrderItem, 0)
	for _, item := range r.items {
		if item.OrderID == orderID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeProductRepository struct {
	products map[string]*domain.Product
}

func (r *fakeProductRepository) Create(_ context.Context, product *domain.Product) error {
	product.ID = uuid.NewString()
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return product, nil
}

func (r *fakeProductRepository) List(_ context.Context, limit, offset int) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func newTestOrderService(t *testing.T) (*OrderService, *fakeClientRepository, *fakeProductRepository, events.Dispatcher) {
	t.Helper()

	clients := &fakeClientRepository{clients: make(map[string]*domain.Client)}
	orders := &fakeOrderRepository{orders: make(map[string]*domain.Order)}
	items := &fakeOrderItemRepository{items: make(map[string]*domain.OrderItem)}
	products := &fakeProductRepository{products: make(map[string]*domain.Product)}
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewOrderService(OrderDependencies{
		ClientRepo:    clients,
		OrderRepo:     orders,
		OrderItemRepo: items,
		ProductRepo:   products,
	}, dispatcher)
	return svc, clients, products, dispatcher
}

func TestCreateOrderComputesTotalFromItems(t *testing.T) {
	svc, clients, products, dispatcher := newTestOrderService(t)
	ctx := context.Background()

	client := &domain.Client{Name: "Dona Helena"}
	require.NoError(t, clients.Create(ctx, client))
	mug := &domain.Product{Name: "Custom mug", BaseCost: 10}
	shirt := &domain.Product{Name: "Printed shirt", BaseCost: 30}
	require.NoError(t, products.Create(ctx, mug))
	require.NoError(t, products.Create(ctx, shirt))

	var published []events.Event
	dispatcher.Subscribe(events.EventOrderCreated, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	order, items, err := svc.CreateOrder(ctx, events.Actor{UserID: "u-1"}, OrderCreateInput{
		ClientID:    client.ID,
		TotalAmount: 9999, // ignored when items are supplied
		Items: []OrderItemInput{
			{ProductID: mug.ID, Quantity: 3, UnitPrice: 15},
			{ProductID: shirt.ID, Quantity: 1, UnitPrice: 55},
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.InDelta(t, 100.0, order.TotalAmount, 0.001)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.False(t, order.PlacedAt.IsZero())

	require.Len(t, published, 1)
	require.Equal(t, order.ID, published[0].SubjectID)
	payload, ok := published[0].Payload.(events.OrderCreatedPayload)
	require.True(t, ok)
	require.Equal(t, 2, payload.ItemCount)
}

func TestCreateOrderUnknownClient(t *testing.T) {
	svc, _, _, _ := newTestOrderService(t)

	_, _, err := svc.CreateOrder(context.Background(), events.Actor{}, OrderCreateInput{
		ClientID: "missing",
	})
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, clients, _, _ := newTestOrderService(t)
	ctx := context.Background()

	client := &domain.Client{Name: "Dona Helena"}
	require.NoError(t, clients.Create(ctx, client))

	_, _, err := svc.CreateOrder(ctx, events.Actor{}, OrderCreateInput{
		ClientID: client.ID,
		Items:    []OrderItemInput{{ProductID: "missing", Quantity: 1, UnitPrice: 10}},
	})
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUpdateOrderEmitsStatusChange(t *testing.T) {
	svc, clients, _, dispatcher := newTestOrderService(t)
	ctx := context.Background()

	client := &domain.Client{Name: "Dona Helena"}
	require.NoError(t, clients.Create(ctx, client))

	order, _, err := svc.CreateOrder(ctx, events.Actor{}, OrderCreateInput{ClientID: client.ID})
	require.NoError(t, err)

	var changes []events.Event
	dispatcher.Subscribe(events.EventOrderStatusChanged, func(_ context.Context, e events.Event) error {
		changes = append(changes, e)
		return nil
	})

	delivered := domain.OrderStatusDelivered
	updated, err := svc.UpdateOrder(ctx, events.Actor{}, order.ID, OrderUpdateInput{Status: &delivered})
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusDelivered, updated.Status)
	require.Len(t, changes, 1)

	// Setting the same status again is not a transition.
	_, err = svc.UpdateOrder(ctx, events.Actor{}, order.ID, OrderUpdateInput{Status: &delivered})
	require.NoError(t, err)
	require.Len(t, changes, 1)
}
