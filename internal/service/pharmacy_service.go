package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/events"
	"github.com/spec-kit/atelier-service/internal/repository"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"
)

// PharmacyService manages medications, prescriptions and intake history.
type PharmacyService struct {
	medications   repository.MedicationRepository
	prescriptions repository.PrescriptionRepository
	histories     repository.HistoryRepository
	users         repository.UserRepository
	dispatcher    events.Dispatcher
}

// PharmacyDependencies encapsulates repo requirements for the pharmacy service.
type PharmacyDependencies struct {
	MedicationRepo   repository.MedicationRepository
	PrescriptionRepo repository.PrescriptionRepository
	HistoryRepo      repository.HistoryRepository
	UserRepo         repository.UserRepository
}

// NewPharmacyService builds the service.
func NewPharmacyService(deps PharmacyDependencies, dispatcher events.Dispatcher) *PharmacyService {
	return &PharmacyService{
		medications:   deps.MedicationRepo,
		prescriptions: deps.PrescriptionRepo,
		histories:     deps.HistoryRepo,
		users:         deps.UserRepo,
		dispatcher:    dispatcher,
	}
}

func (s *PharmacyService) CreateMedication(ctx context.Context, medication *domain.Medication) error {
	return s.medications.Create(ctx, medication)
}

func (s *PharmacyService) GetMedication(ctx context.Context, id string) (*domain.Medication, error) {
	return s.medications.GetByID(ctx, id)
}

func (s *PharmacyService) ListMedications(ctx context.Context, limit, offset int) ([]*domain.Medication, error) {
	return s.medications.List(ctx, limit, offset)
}

func (s *PharmacyService) UpdateMedication(ctx context.Context, medication *domain.Medication) error {
	return s.medications.Update(ctx, medication)
}

func (s *PharmacyService) DeleteMedication(ctx context.Context, id string) error {
	return s.medications.Delete(ctx, id)
}

// PrescriptionCreateInput describes a new prescription.
type PrescriptionCreateInput struct {
	UserID       string
	MedicationID string
	Dosage       string
	Frequency    string
	StartsOn     time.Time
	EndsOn       *time.Time
}

// CreatePrescription validates the referenced user and medication before
// persisting.
func (s *PharmacyService) CreatePrescription(ctx context.Context, actor events.Actor, input PrescriptionCreateInput) (*domain.Prescription, error) {
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	if _, err := s.medications.GetByID(ctx, input.MedicationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("medication", nil)
		}
		return nil, err
	}

	prescription := &domain.Prescription{
		UserID:       input.UserID,
		MedicationID: input.MedicationID,
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		StartsOn:     input.StartsOn,
		EndsOn:       input.EndsOn,
		Status:       domain.PrescriptionStatusActive,
	}
	if err := s.prescriptions.Create(ctx, prescription); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPrescriptionCreated, prescription.ID, actor, events.PrescriptionCreatedPayload{
		UserID:       prescription.UserID,
		MedicationID: prescription.MedicationID,
	})
	return prescription, nil
}

func (s *PharmacyService) GetPrescription(ctx context.Context, id string) (*domain.Prescription, error) {
	return s.prescriptions.GetByID(ctx, id)
}

func (s *PharmacyService) ListPrescriptions(ctx context.Context, limit, offset int) ([]*domain.Prescription, error) {
	return s.prescriptions.List(ctx, limit, offset)
}

func (s *PharmacyService) ListPrescriptionsByUser(ctx context.Context, userID string) ([]*domain.Prescription, error) {
	return s.prescriptions.ListByUser(ctx, userID)
}

// PrescriptionUpdateInput carries optional prescription mutations.
type PrescriptionUpdateInput struct {
	Dosage    *string
	Frequency *string
	StartsOn  *time.Time
	EndsOn    *time.Time
	Status    *domain.PrescriptionStatus
}

// UpdatePrescription applies the provided fields and emits a status
// change event when the status moved.
func (s *PharmacyService) UpdatePrescription(ctx context.Context, actor events.Actor, id string, input PrescriptionUpdateInput) (*domain.Prescription, error) {
	prescription, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := prescription.Status
	if input.Dosage != nil {
		prescription.Dosage = *input.Dosage
	}
	if input.Frequency != nil {
		prescription.Frequency = *input.Frequency
	}
	if input.StartsOn != nil {
		prescription.StartsOn = *input.StartsOn
	}
	if input.EndsOn != nil {
		prescription.EndsOn = input.EndsOn
	}
	if input.Status != nil {
		prescription.Status = *input.Status
	}

	if err := s.prescriptions.Update(ctx, prescription); err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != oldStatus {
		s.publish(ctx, events.EventPrescriptionStatusChanged, prescription.ID, actor, events.PrescriptionStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: prescription.Status,
		})
	}
	return prescription, nil
}

func (s *PharmacyService) DeletePrescription(ctx context.Context, id string) error {
	return s.prescriptions.Delete(ctx, id)
}

// RecordIntake logs an intake against an existing prescription.
func (s *PharmacyService) RecordIntake(ctx context.Context, prescriptionID string, takenAt time.Time, note string) (*domain.HistoryEntry, error) {
	if _, err := s.prescriptions.GetByID(ctx, prescriptionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("prescription", nil)
		}
		return nil, err
	}

	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	entry := &domain.HistoryEntry{
		PrescriptionID: prescriptionID,
		TakenAt:        takenAt,
		Note:           note,
	}
	if err := s.histories.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *PharmacyService) GetHistoryEntry(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	return s.histories.GetByID(ctx, id)
}

func (s *PharmacyService) ListHistory(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error) {
	return s.histories.List(ctx, limit, offset)
}

func (s *PharmacyService) ListHistoryByPrescription(ctx context.Context, prescriptionID string) ([]*domain.HistoryEntry, error) {
	if _, err := s.prescriptions.GetByID(ctx, prescriptionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("prescription", nil)
		}
		return nil, err
	}
	return s.histories.ListByPrescription(ctx, prescriptionID)
}

func (s *PharmacyService) DeleteHistoryEntry(ctx context.Context, id string) error {
	return s.histories.Delete(ctx, id)
}

func (s *PharmacyService) publish(ctx context.Context, eventType events.EventType, subjectID string, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
