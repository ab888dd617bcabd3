package dto

import (
	"time"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// MedicationCreateRequest payload for new medications.
type MedicationCreateRequest struct {
	Name       string `json:"name"`
	DosageForm string `json:"dosage_form"`
	Strength   string `json:"strength"`
}

// MedicationUpdateRequest carries optional medication mutations.
type MedicationUpdateRequest struct {
	Name       *string `json:"name"`
	DosageForm *string `json:"dosage_form"`
	Strength   *string `json:"strength"`
}

// MedicationResponse is the public shape of a medication.
type MedicationResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DosageForm string    `json:"dosage_form"`
	Strength   string    `json:"strength"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewMedicationResponse maps the domain model.
func NewMedicationResponse(medication *domain.Medication) MedicationResponse {
	return MedicationResponse{
		ID:         medication.ID,
		Name:       medication.Name,
		DosageForm: medication.DosageForm,
		Strength:   medication.Strength,
		CreatedAt:  medication.CreatedAt,
	}
}

// PrescriptionCreateRequest payload for new prescriptions.
type PrescriptionCreateRequest struct {
	UserID       string     `json:"user_id"`
	MedicationID string     `json:"medication_id"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	StartsOn     time.Time  `json:"starts_on"`
	EndsOn       *time.Time `json:"ends_on,omitempty"`
}

// PrescriptionUpdateRequest carries optional prescription mutations.
type PrescriptionUpdateRequest struct {
	Dosage    *string    `json:"dosage"`
	Frequency *string    `json:"frequency"`
	StartsOn  *time.Time `json:"starts_on"`
	EndsOn    *time.Time `json:"ends_on"`
	Status    *string    `json:"status"`
}

// PrescriptionResponse is the public shape of a prescription.
type PrescriptionResponse struct {
	ID           string                    `json:"id"`
	UserID       string                    `json:"user_id"`
	MedicationID string                    `json:"medication_id"`
	Dosage       string                    `json:"dosage"`
	Frequency    string                    `json:"frequency"`
	StartsOn     time.Time                 `json:"starts_on"`
	EndsOn       *time.Time                `json:"ends_on,omitempty"`
	Status       domain.PrescriptionStatus `json:"status"`
	CreatedAt    time.Time                 `json:"created_at"`
}

// NewPrescriptionResponse maps the domain model.
func NewPrescriptionResponse(prescription *domain.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:           prescription.ID,
		UserID:       prescription.UserID,
		MedicationID: prescription.MedicationID,
		Dosage:       prescription.Dosage,
		Frequency:    prescription.Frequency,
		StartsOn:     prescription.StartsOn,
		EndsOn:       prescription.EndsOn,
		Status:       prescription.Status,
		CreatedAt:    prescription.CreatedAt,
	}
}

// HistoryCreateRequest payload for new intake entries.
type HistoryCreateRequest struct {
	PrescriptionID string     `json:"prescription_id"`
	TakenAt        *time.Time `json:"taken_at,omitempty"`
	Note           string     `json:"note,omitempty"`
}

// HistoryResponse is the public shape of an intake entry.
type HistoryResponse struct {
	ID             string    `json:"id"`
	PrescriptionID string    `json:"prescription_id"`
	TakenAt        time.Time `json:"taken_at"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewHistoryResponse maps the domain model.
func NewHistoryResponse(entry *domain.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:             entry.ID,
		PrescriptionID: entry.PrescriptionID,
		TakenAt:        entry.TakenAt,
		Note:           entry.Note,
		CreatedAt:      entry.CreatedAt,
	}
}
