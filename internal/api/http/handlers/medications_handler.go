package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/dto"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/service"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// MedicationsHandler manages the medication catalog.
type MedicationsHandler struct {
	pharmacy *service.PharmacyService
}

// NewMedicationsHandler constructs handler.
func NewMedicationsHandler(pharmacyService *service.PharmacyService) *MedicationsHandler {
	return &MedicationsHandler{pharmacy: pharmacyService}
}

// Create POST /medications.
func (h *MedicationsHandler) Create(c *fiber.Ctx) error {
	var req dto.MedicationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	medication := &domain.Medication{
		Name:       req.Name,
		DosageForm: req.DosageForm,
		Strength:   req.Strength,
	}
	if err := h.pharmacy.CreateMedication(c.Context(), medication); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMedicationResponse(medication)})
}

// List GET /medications.
func (h *MedicationsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	medications, err := h.pharmacy.ListMedications(c.Context(), limit, offset)
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.MedicationResponse, 0, len(medications))
	for _, medication := range medications {
		out = append(out, dto.NewMedicationResponse(medication))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /medications/:id.
func (h *MedicationsHandler) Get(c *fiber.Ctx) error {
	medication, err := h.pharmacy.GetMedication(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewMedicationResponse(medication)})
}

// Update PATCH /medications/:id.
func (h *MedicationsHandler) Update(c *fiber.Ctx) error {
	var req dto.MedicationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	medication, err := h.pharmacy.GetMedication(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	if req.Name != nil {
		medication.Name = *req.Name
	}
	if req.DosageForm != nil {
		medication.DosageForm = *req.DosageForm
	}
	if req.Strength != nil {
		medication.Strength = *req.Strength
	}

	if err := h.pharmacy.UpdateMedication(c.Context(), medication); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewMedicationResponse(medication)})
}

// Delete DELETE /medications/:id.
func (h *MedicationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.pharmacy.DeleteMedication(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
