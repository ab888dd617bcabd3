package dto

import (
	"time"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// ClientCreateRequest payload for new clients.
type ClientCreateRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// ClientUpdateRequest carries optional client mutations.
type ClientUpdateRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// ClientResponse is the public shape of a client.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClientResponse maps the domain model.
func NewClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Contact:   client.Contact,
		Address:   client.Address,
		CreatedAt: client.CreatedAt,
	}
}

// ProductCreateRequest payload for new products.
type ProductCreateRequest struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	BaseCost        float64 `json:"base_cost"`
	ProfitMargin    float64 `json:"profit_margin"`
	PrimaryMaterial string  `json:"primary_material"`
}

// ProductUpdateRequest carries optional product mutations.
type ProductUpdateRequest struct {
	Name            *string  `json:"name"`
	Type            *string  `json:"type"`
	BaseCost        *float64 `json:"base_cost"`
	ProfitMargin    *float64 `json:"profit_margin"`
	PrimaryMaterial *string  `json:"primary_material"`
}

// ProductResponse is the public shape of a product.
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	BaseCost        float64   `json:"base_cost"`
	ProfitMargin    float64   `json:"profit_margin"`
	PrimaryMaterial string    `json:"primary_material"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewProductResponse maps the domain model.
func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Type:            product.Type,
		BaseCost:        product.BaseCost,
		ProfitMargin:    product.ProfitMargin,
		PrimaryMaterial: product.PrimaryMaterial,
		CreatedAt:       product.CreatedAt,
	}
}

// CustomizationCreateRequest payload for new customizations.
type CustomizationCreateRequest struct {
	Type           string  `json:"type"`
	AdditionalCost float64 `json:"additional_cost"`
	Details        string  `json:"details"`
}

// CustomizationUpdateRequest carries optional customization mutations.
type CustomizationUpdateRequest struct {
	Type           *string  `json:"type"`
	AdditionalCost *float64 `json:"additional_cost"`
	Details        *string  `json:"details"`
}

// CustomizationResponse is the public shape of a customization.
type CustomizationResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	AdditionalCost float64   `json:"additional_cost"`
	Details        string    `json:"details"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCustomizationResponse maps the domain model.
func NewCustomizationResponse(customization *domain.Customization) CustomizationResponse {
	return CustomizationResponse{
		ID:             customization.ID,
		Type:           customization.Type,
		AdditionalCost: customization.AdditionalCost,
		Details:        customization.Details,
		CreatedAt:      customization.CreatedAt,
	}
}

// ImageCreateRequest payload for new images.
type ImageCreateRequest struct {
	Source         string  `json:"source"`
	AdditionalCost float64 `json:"additional_cost"`
}

// ImageUpdateRequest carries optional image mutations.
type ImageUpdateRequest struct {
	Source         *string  `json:"source"`
	AdditionalCost *float64 `json:"additional_cost"`
}

// ImageResponse is the public shape of an image.
type ImageResponse struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	AdditionalCost float64   `json:"additional_cost"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewImageResponse maps the domain model.
func NewImageResponse(image *domain.Image) ImageResponse {
	return ImageResponse{
		ID:             image.ID,
		Source:         image.Source,
		AdditionalCost: image.AdditionalCost,
		CreatedAt:      image.CreatedAt,
	}
}
