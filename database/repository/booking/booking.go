package bookingRepo

import (
	"padoo/models"
)

// ConsultationRepository defines data access for walk-in consultation records.
type ConsultationRepository interface {
	Create(consultation *models.Consultation) error
	GetByID(id string) (*models.Consultation, error)
	SetVoided(id string) error
	// ListByDate returns non-voided consultations for the date, optionally
	// filtered to one technician.
	ListByDate(date, technicianID string) ([]models.Consultation, error)
}

// ReservationRepository defines data access for reservation records.
type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	GetByID(id string) (*models.Reservation, error)
	SetStatus(id, status string) error
	// ListByDate returns booked (non-cancelled) reservations for the date,
	// optionally filtered to one technician.
	ListByDate(date, technicianID string) ([]models.Reservation, error)
}
