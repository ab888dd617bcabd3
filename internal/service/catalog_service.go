package service

import (
	"context"

	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/repository"
)

// CatalogService manages products, customizations and artwork images.
type CatalogService struct {
	products       repository.ProductRepository
	customizations repository.CustomizationRepository
	images         repository.ImageRepository
}

// NewCatalogService builds the service.
func NewCatalogService(products repository.ProductRepository, customizations repository.CustomizationRepository, images repository.ImageRepository) *CatalogService {
	return &CatalogService{products: products, customizations: customizations, images: images}
}

// SellPrice returns the catalog price of a product including margin.
func SellPrice(product *domain.Product) float64 {
	return product.BaseCost * (1 + product.ProfitMargin/100)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	return s.products.Create(ctx, product)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	return s.products.List(ctx, limit, offset)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return s.products.Update(ctx, product)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) CreateCustomization(ctx context.Context, customization *domain.Customization) error {
	return s.customizations.Create(ctx, customization)
}

func (s *CatalogService) GetCustomization(ctx context.Context, id string) (*domain.Customization, error) {
	return s.customizations.GetByID(ctx, id)
}

func (s *CatalogService) ListCustomizations(ctx context.Context, limit, offset int) ([]*domain.Customization, error) {
	return s.customizations.List(ctx, limit, offset)
}

func (s *CatalogService) UpdateCustomization(ctx context.Context, customization *domain.Customization) error {
	return s.customizations.Update(ctx, customization)
}

func (s *CatalogService) DeleteCustomization(ctx context.Context, id string) error {
	return s.customizations.Delete(ctx, id)
}

func (s *CatalogService) CreateImage(ctx context.Context, image *domain.Image) error {
	return s.images.Create(ctx, image)
}

func (s *CatalogService) GetImage(ctx context.Context, id string) (*domain.Image, error) {
	return s.images.GetByID(ctx, id)
}

func (s *CatalogService) ListImages(ctx context.Context, limit, offset int) ([]*domain.Image, error) {
	return s.images.List(ctx, limit, offset)
}

func (s *CatalogService) UpdateImage(ctx context.Context, image *domain.Image) error {
	return s.images.Update(ctx, image)
}

func (s *CatalogService) DeleteImage(ctx context.Context, id string) error {
	return s.images.Delete(ctx, id)
}
