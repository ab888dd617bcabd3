package events

import (
	"time"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated              EventType = "order_created"
	EventOrderStatusChanged        EventType = "order_status_changed"
	EventPrescriptionCreated       EventType = "prescription_created"
	EventPrescriptionStatusChanged EventType = "prescription_status_changed"
	EventUserLoggedIn              EventType = "user_logged_in"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	ClientID    string  `json:"client_id"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// PrescriptionCreatedPayload payload.
type PrescriptionCreatedPayload struct {
	UserID       string `json:"user_id"`
	MedicationID string `json:"medication_id"`
}

// PrescriptionStatusChangedPayload payload.
type PrescriptionStatusChangedPayload struct {
	OldStatus domain.PrescriptionStatus `json:"old_status"`
	NewStatus domain.PrescriptionStatus `json:"new_status"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	Email string `json:"email"`
}
