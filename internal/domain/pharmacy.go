package domain

import "time"

// PrescriptionStatus represents lifecycle states for a prescription.
type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "ACTIVE"
	PrescriptionStatusCompleted PrescriptionStatus = "COMPLETED"
	PrescriptionStatusCancelled PrescriptionStatus = "CANCELLED"
)

// Medication is a catalog entry for a trackable medicine.
type Medication struct {
	ID         string
	Name       string
	DosageForm string
	Strength   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Prescription ties a user to a medication schedule.
type Prescription struct {
	ID           string
	UserID       string
	MedicationID string
	Dosage       string
	Frequency    string
	StartsOn     time.Time
	EndsOn       *time.Time
	Status       PrescriptionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HistoryEntry records a single intake against a prescription.
type HistoryEntry struct {
	ID             string
	PrescriptionID string
	TakenAt        time.Time
	Note           string
	CreatedAt      time.Time
}
