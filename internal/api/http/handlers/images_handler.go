package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/dto"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/service"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// ImagesHandler manages artwork image endpoints.
type ImagesHandler struct {
	catalog *service.CatalogService
}

// NewImagesHandler constructs handler.
func NewImagesHandler(catalogService *service.CatalogService) *ImagesHandler {
	return &ImagesHandler{catalog: catalogService}
}

// Create POST /images.
func (h *ImagesHandler) Create(c *fiber.Ctx) error {
	var req dto.ImageCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Source == "" {
		return apperrors.NewValidationError("source required", nil)
	}

	image := &domain.Image{Source: req.Source, AdditionalCost: req.AdditionalCost}
	if err := h.catalog.CreateImage(c.Context(), image); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewImageResponse(image)})
}

// List GET /images.
func (h *ImagesHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	images, err := h.catalog.ListImages(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.ImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, dto.NewImageResponse(image))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /images/:id.
func (h *ImagesHandler) Get(c *fiber.Ctx) error {
	image, err := h.catalog.GetImage(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewImageResponse(image)})
}

// Update PATCH /images/:id.
func (h *ImagesHandler) Update(c *fiber.Ctx) error {
	var req dto.ImageUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	image, err := h.catalog.GetImage(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	if req.Source != nil {
		image.Source = *req.Source
	}
	if req.AdditionalCost != nil {
		image.AdditionalCost = *req.AdditionalCost
	}

	if err := h.catalog.UpdateImage(c.Context(), image); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewImageResponse(image)})
}

// Delete DELETE /images/:id.
func (h *ImagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteImage(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
