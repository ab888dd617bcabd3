package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/dto"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/service"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// PrescriptionsHandler manages prescription and intake history endpoints.
type PrescriptionsHandler struct {
	pharmacy *service.PharmacyService
}

// NewPrescriptionsHandler constructs handler.
func NewPrescriptionsHandler(pharmacyService *service.PharmacyService) *PrescriptionsHandler {
	return &PrescriptionsHandler{pharmacy: pharmacyService}
}

// Create POST /prescriptions.
func (h *PrescriptionsHandler) Create(c *fiber.Ctx) error {
	var req dto.PrescriptionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" || req.MedicationID == "" || req.Dosage == "" {
		return apperrors.NewValidationError("user_id, medication_id, dosage required", nil)
	}

	prescription, err := h.pharmacy.CreatePrescription(c.Context(), actorFrom(c), service.PrescriptionCreateInput{
		UserID:       req.UserID,
		MedicationID: req.MedicationID,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		StartsOn:     req.StartsOn,
		EndsOn:       req.EndsOn,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPrescriptionResponse(prescription)})
}

// List GET /prescriptions.
func (h *PrescriptionsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	prescriptions, err := h.pharmacy.ListPrescriptions(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		out = append(out, dto.NewPrescriptionResponse(prescription))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /prescriptions/:id.
func (h *PrescriptionsHandler) Get(c *fiber.Ctx) error {
	prescription, err := h.pharmacy.GetPrescription(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewPrescriptionResponse(prescription)})
}

// Update PATCH /prescriptions/:id.
func (h *PrescriptionsHandler) Update(c *fiber.Ctx) error {
	var req dto.PrescriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.PrescriptionUpdateInput{
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		StartsOn:  req.StartsOn,
		EndsOn:    req.EndsOn,
	}
	if req.Status != nil {
		status := domain.PrescriptionStatus(*req.Status)
		input.Status = &status
	}

	prescription, err := h.pharmacy.UpdatePrescription(c.Context(), actorFrom(c), c.Params("id"), input)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewPrescriptionResponse(prescription)})
}

// Delete DELETE /prescriptions/:id.
func (h *PrescriptionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.pharmacy.DeletePrescription(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// ListHistory GET /prescriptions/:id/history.
func (h *PrescriptionsHandler) ListHistory(c *fiber.Ctx) error {
	entries, err := h.pharmacy.ListHistoryByPrescription(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.HistoryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.NewHistoryResponse(entry))
	}
	return c.JSON(fiber.Map{"data": out})
}

// CreateHistory POST /histories.
func (h *PrescriptionsHandler) CreateHistory(c *fiber.Ctx) error {
	var req dto.HistoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PrescriptionID == "" {
		return apperrors.NewValidationError("prescription_id required", nil)
	}

	var takenAt time.Time
	if req.TakenAt != nil {
		takenAt = *req.TakenAt
	}
	entry, err := h.pharmacy.RecordIntake(c.Context(), req.PrescriptionID, takenAt, req.Note)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewHistoryResponse(entry)})
}

// ListHistories GET /histories.
func (h *PrescriptionsHandler) ListHistories(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	entries, err := h.pharmacy.ListHistory(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.HistoryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.NewHistoryResponse(entry))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetHistory GET /histories/:id.
func (h *PrescriptionsHandler) GetHistory(c *fiber.Ctx) error {
	entry, err := h.pharmacy.GetHistoryEntry(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewHistoryResponse(entry)})
}

// DeleteHistory DELETE /histories/:id.
func (h *PrescriptionsHandler) DeleteHistory(c *fiber.Ctx) error {
	if err := h.pharmacy.DeleteHistoryEntry(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
