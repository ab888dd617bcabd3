package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/dto"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/service"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// ClientsHandler manages atelier client endpoints.
type ClientsHandler struct {
	orders *service.OrderService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(orderService *service.OrderService) *ClientsHandler {
	return &ClientsHandler{orders: orderService}
}

// Create POST /clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	client := &domain.Client{Name: req.Name, Contact: req.Contact, Address: req.Address}
	if err := h.orders.CreateClient(c.Context(), client); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// List GET /clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	clients, err := h.orders.ListClients(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, dto.NewClientResponse(client))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	client, err := h.orders.GetClient(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// Update PATCH /clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.ClientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	client, err := h.orders.GetClient(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := h.orders.UpdateClient(c.Context(), client); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// Delete DELETE /clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.orders.DeleteClient(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
