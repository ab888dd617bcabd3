package domain

import "time"

// Client is a customer of the atelier who places orders.
type Client struct {
	ID        string
	Name      string
	Contact   string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
