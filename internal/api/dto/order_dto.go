package dto

import (
	"time"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// OrderItemRequest is a line item supplied with an order or on its own.
type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderItemUpdateRequest replaces mutable item fields.
type OrderItemUpdateRequest struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderCreateRequest payload for new orders.
type OrderCreateRequest struct {
	ClientID    string             `json:"client_id"`
	Status      string             `json:"status,omitempty"`
	TotalAmount float64            `json:"total_amount,omitempty"`
	PlacedAt    *time.Time         `json:"placed_at,omitempty"`
	Items       []OrderItemRequest `json:"items,omitempty"`
}

// OrderUpdateRequest carries optional order mutations.
type OrderUpdateRequest struct {
	ClientID    *string  `json:"client_id"`
	Status      *string  `json:"status"`
	TotalAmount *float64 `json:"total_amount"`
}

// OrderResponse is the public shape of an order.
type OrderResponse struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"client_id"`
	Status      domain.OrderStatus `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	PlacedAt    time.Time          `json:"placed_at"`
	CreatedAt   time.Time          `json:"created_at"`
}

// NewOrderResponse maps the domain model.
func NewOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		ClientID:    order.ClientID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		PlacedAt:    order.PlacedAt,
		CreatedAt:   order.CreatedAt,
	}
}

// OrderItemResponse is the public shape of an order item.
type OrderItemResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrderItemResponse maps the domain model.
func NewOrderItemResponse(item *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		LineTotal: item.LineTotal(),
		CreatedAt: item.CreatedAt,
	}
}
