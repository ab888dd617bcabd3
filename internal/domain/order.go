package domain

import "time"

// OrderStatus represents lifecycle states for an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusInProcess OrderStatus = "IN_PROCESS"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a client purchase composed of order items.
type Order struct {
	ID          string
	ClientID    string
	Status      OrderStatus
	TotalAmount float64
	PlacedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineTotal returns the item subtotal.
func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
