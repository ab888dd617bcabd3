package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/dto"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/service"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// CustomizationsHandler manages customization endpoints.
type CustomizationsHandler struct {
	catalog *service.CatalogService
}

// NewCustomizationsHandler constructs handler.
func NewCustomizationsHandler(catalogService *service.CatalogService) *CustomizationsHandler {
	return &CustomizationsHandler{catalog: catalogService}
}

// Create POST /customizations.
func (h *CustomizationsHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomizationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Type == "" {
		return apperrors.NewValidationError("type required", nil)
	}

	customization := &domain.Customization{
		Type:           req.Type,
		AdditionalCost: req.AdditionalCost,
		Details:        req.Details,
	}
	if err := h.catalog.CreateCustomization(c.Context(), customization); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCustomizationResponse(customization)})
}

// List GET /customizations.
func (h *CustomizationsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	customizations, err := h.catalog.ListCustomizations(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.CustomizationResponse, 0, len(customizations))
	for _, customization := range customizations {
		out = append(out, dto.NewCustomizationResponse(customization))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /customizations/:id.
func (h *CustomizationsHandler) Get(c *fiber.Ctx) error {
	customization, err := h.catalog.GetCustomization(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewCustomizationResponse(customization)})
}

// Update PATCH /customizations/:id.
func (h *CustomizationsHandler) Update(c *fiber.Ctx) error {
	var req dto.CustomizationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customization, err := h.catalog.GetCustomization(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	if req.Type != nil {
		customization.Type = *req.Type
	}
	if req.AdditionalCost != nil {
		customization.AdditionalCost = *req.AdditionalCost
	}
	if req.Details != nil {
		customization.Details = *req.Details
	}

	if err := h.catalog.UpdateCustomization(c.Context(), customization); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewCustomizationResponse(customization)})
}

// Delete DELETE /customizations/:id.
func (h *CustomizationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCustomization(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
