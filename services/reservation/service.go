package reservation

import (
	"fmt"
	"time"

	"padoo/config"
	bookingRepo "padoo/database/repository/booking"
	staffRepo "padoo/database/repository/staff"
	"padoo/models"
	"padoo/services/availability"

	"github.com/google/uuid"
)

// CreateInput is the payload for booking a reservation.
type CreateInput struct {
	TechnicianID string `json:"technicianId" binding:"required"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Date         string `json:"date" binding:"required"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
}

// Service handles advance reservations.
type Service interface {
	Create(input CreateInput) (*models.Reservation, error)
	Cancel(id string) error
	List(date, technicianID string) ([]models.Reservation, error)
}

// DefaultReservationService implements Service.
type DefaultReservationService struct {
	Repo         bookingRepo.ReservationRepository
	Staff        staffRepo.StaffRepository
	Availability availability.Service
}

// Create validates the proposed interval with the turnaround buffer and
// persists the reservation.
func (s *DefaultReservationService) Create(input CreateInput) (*models.Reservation, error) {
	start, err := availability.ToMinutes(input.Start)
	if err != nil {
		return nil, err
	}
	end, err := availability.ToMinutes(input.End)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, fmt.Errorf("%w: %s-%s", availability.ErrInvalidInterval, input.Start, input.End)
	}

	staff, err := s.Staff.GetByID(input.TechnicianID)
	if err != nil {
		return nil, fmt.Errorf("unknown technician %s: %w", input.TechnicianID, err)
	}

	buffered := end + config.AppConfig.TurnaroundBufferMin
	conflict, err := s.Availability.CheckConflict(input.Date, staff.ID, staff.Name, start, buffered)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, fmt.Errorf("%w: %s %s-%s", availability.ErrTimeConflict, staff.Name, input.Start, input.End)
	}

	reservation := &models.Reservation{
		ID:             uuid.New().String(),
		TechnicianID:   staff.ID,
		TechnicianName: staff.Name,
		CustomerName:   input.CustomerName,
		Phone:          input.Phone,
		Date:           input.Date,
		Start:          start,
		End:            end,
		Status:         models.ReservationBooked,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(reservation); err != nil {
		return nil, err
	}
	s.Availability.InvalidateTimeline(input.Date, staff.ID)
	return reservation, nil
}

// Cancel marks a reservation cancelled and drops the cached timeline.
func (s *DefaultReservationService) Cancel(id string) error {
	reservation, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.SetStatus(id, models.ReservationCancelled); err != nil {
		return err
	}
	s.Availability.InvalidateTimeline(reservation.Date, reservation.TechnicianID)
	return nil
}

// List returns booked reservations for the date, optionally for one
// technician.
func (s *DefaultReservationService) List(date, technicianID string) ([]models.Reservation, error) {
	return s.Repo.ListByDate(date, technicianID)
}
