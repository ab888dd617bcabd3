package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/dto"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/service"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// OrdersHandler manages order and order item endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClientID == "" {
		return apperrors.NewValidationError("client_id required", nil)
	}

	input := service.OrderCreateInput{
		ClientID:    req.ClientID,
		Status:      domain.OrderStatus(req.Status),
		TotalAmount: req.TotalAmount,
	}
	if req.PlacedAt != nil {
		input.PlacedAt = *req.PlacedAt
	}
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return apperrors.NewValidationError("items need product_id and positive quantity", nil)
		}
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, items, err := h.orders.CreateOrder(c.Context(), actorFrom(c), input)
	if err != nil {
		return err
	}

	itemsOut := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemsOut = append(itemsOut, dto.NewOrderItemResponse(item))
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"order": dto.NewOrderResponse(order),
			"items": itemsOut,
		},
	})
}

// List GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	orders, err := h.orders.ListOrders(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewOrderResponse(order))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// Update PATCH /orders/:id.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.OrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.OrderUpdateInput{
		ClientID:    req.ClientID,
		TotalAmount: req.TotalAmount,
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.orders.UpdateOrder(c.Context(), actorFrom(c), c.Params("id"), input)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// Delete DELETE /orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	if err := h.orders.DeleteOrder(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// ListItems GET /orders/:id/items.
func (h *OrdersHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.orders.ListOrderItems(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewOrderItemResponse(item))
	}
	return c.JSON(fiber.Map{"data": out})
}

// CreateItem POST /orders/:id/items.
func (h *OrdersHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.OrderItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		return apperrors.NewValidationError("product_id and positive quantity required", nil)
	}

	item, err := h.orders.AddItem(c.Context(), service.OrderItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}, c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderItemResponse(item)})
}

// GetItem GET /order-items/:id.
func (h *OrdersHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.orders.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderItemResponse(item)})
}

// UpdateItem PATCH /order-items/:id.
func (h *OrdersHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.OrderItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Quantity <= 0 {
		return apperrors.NewValidationError("positive quantity required", nil)
	}

	item, err := h.orders.UpdateItem(c.Context(), c.Params("id"), req.Quantity, req.UnitPrice)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderItemResponse(item)})
}

// DeleteItem DELETE /order-items/:id.
func (h *OrdersHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.orders.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
