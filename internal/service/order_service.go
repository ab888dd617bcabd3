package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/events"
	"github.com/spec-kit/atelier-service/internal/repository"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// OrderService coordinates clients, orders and their line items.
type OrderService struct {
	clients    repository.ClientRepository
	orders     repository.OrderRepository
	items      repository.OrderItemRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// OrderDependencies encapsulates repo requirements for the order service.
type OrderDependencies struct {
	ClientRepo    repository.ClientRepository
	OrderRepo     repository.OrderRepository
	OrderItemRepo repository.OrderItemRepository
	ProductRepo   repository.ProductRepository
}

// NewOrderService builds the service.
func NewOrderService(deps OrderDependencies, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{
		clients:    deps.ClientRepo,
		orders:     deps.OrderRepo,
		items:      deps.OrderItemRepo,
		products:   deps.ProductRepo,
		dispatcher: dispatcher,
	}
}

// OrderItemInput describes a line item supplied at order creation.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// OrderCreateInput describes a new order.
type OrderCreateInput struct {
	ClientID    string
	Status      domain.OrderStatus
	TotalAmount float64
	PlacedAt    time.Time
	Items       []OrderItemInput
}

// CreateOrder validates references, computes the total when items are
// supplied and persists the order with its items.
func (s *OrderService) CreateOrder(ctx context.Context, actor events.Actor, input OrderCreateInput) (*domain.Order, []*domain.OrderItem, error) {
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("client", nil)
		}
		return nil, nil, err
	}

	total := input.TotalAmount
	if len(input.Items) > 0 {
		total = 0
		for _, item := range input.Items {
			if _, err := s.products.GetByID(ctx, item.ProductID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, nil, apperrors.NewNotFound("product", map[string]any{"product_id": item.ProductID})
				}
				return nil, nil, err
			}
			total += float64(item.Quantity) * item.UnitPrice
		}
	}

	status := input.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	placedAt := input.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	order := &domain.Order{
		ClientID:    input.ClientID,
		Status:      status,
		TotalAmount: total,
		PlacedAt:    placedAt,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	items := make([]*domain.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		item := &domain.OrderItem{
			OrderID:   order.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
		if err := s.items.Create(ctx, item); err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	s.publish(ctx, events.EventOrderCreated, order.ID, actor, events.OrderCreatedPayload{
		ClientID:    order.ClientID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(items),
	})
	return order, items, nil
}

// GetOrder fetches a single order.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// ListOrders returns a page of orders.
func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	return s.orders.List(ctx, limit, offset)
}

// OrderUpdateInput carries optional order mutations.
type OrderUpdateInput struct {
	ClientID    *string
	Status      *domain.OrderStatus
	TotalAmount *float64
}

// UpdateOrder applies the provided fields and emits a status change
// event when the status moved.
func (s *OrderService) UpdateOrder(ctx context.Context, actor events.Actor, id string, input OrderUpdateInput) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if input.ClientID != nil {
		if _, err := s.clients.GetByID(ctx, *input.ClientID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("client", nil)
			}
			return nil, err
		}
		order.ClientID = *input.ClientID
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.TotalAmount != nil {
		order.TotalAmount = *input.TotalAmount
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != oldStatus {
		s.publish(ctx, events.EventOrderStatusChanged, order.ID, actor, events.OrderStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: order.Status,
		})
	}
	return order, nil
}

// DeleteOrder removes an order.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// ListOrderItems returns the items of an existing order.
func (s *OrderService) ListOrderItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}
	return s.items.ListByOrder(ctx, orderID)
}

// AddItem creates a line item after checking both referenced rows exist.
func (s *OrderService) AddItem(ctx context.Context, input OrderItemInput, orderID string) (*domain.OrderItem, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", nil)
		}
		return nil, err
	}

	item := &domain.OrderItem{
		OrderID:   orderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem fetches a single order item.
func (s *OrderService) GetItem(ctx context.Context, id string) (*domain.OrderItem, error) {
	return s.items.GetByID(ctx, id)
}

// UpdateItem replaces quantity and unit price on an existing item.
func (s *OrderService) UpdateItem(ctx context.Context, id string, quantity int, unitPrice float64) (*domain.OrderItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.UnitPrice = unitPrice
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a line item.
func (s *OrderService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// CreateClient registers a new atelier client.
func (s *OrderService) CreateClient(ctx context.Context, client *domain.Client) error {
	return s.clients.Create(ctx, client)
}

// GetClient fetches a single client.
func (s *OrderService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// ListClients returns a page of clients.
func (s *OrderService) ListClients(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	return s.clients.List(ctx, limit, offset)
}

// UpdateClient persists client mutations.
func (s *OrderService) UpdateClient(ctx context.Context, client *domain.Client) error {
	return s.clients.Update(ctx, client)
}

// DeleteClient removes a client.
func (s *OrderService) DeleteClient(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, subjectID string, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
