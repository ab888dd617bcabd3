package domain

import "time"

// Product is a customizable item offered by the atelier.
type Product struct {
	ID              string
	Name            string
	Type            string
	BaseCost        float64
	ProfitMargin    float64
	PrimaryMaterial string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Customization is an add-on applied to ordered products.
type Customization struct {
	ID             string
	Type           string
	AdditionalCost float64
	Details        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Image is artwork supplied for a customization, priced by origin.
type Image struct {
	ID             string
	Source         string
	AdditionalCost float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
