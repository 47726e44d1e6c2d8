package consultation

import (
	"fmt"
	"time"

	"padoo/config"
	bookingRepo "padoo/database/repository/booking"
	staffRepo "padoo/database/repository/staff"
	"padoo/models"
	"padoo/services/availability"
	"padoo/services/rotation"
	"padoo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput is the intake payload for a walk-in consultation. Start and End
// are "HH:MM" clock strings as typed by the operator.
type CreateInput struct {
	TechnicianID string `json:"technicianId" binding:"required"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date" binding:"required"`
	Start        string `json:"start" binding:"required"`
	End          string `json:"end" binding:"required"`
	// ClockIn marks a named request: the customer asked for this technician.
	ClockIn bool `json:"clockIn"`
	// ServeQueue also records the serve on the date's rotation queue.
	ServeQueue bool `json:"serveQueue"`
}

// Service handles walk-in consultation intake.
type Service interface {
	Create(input CreateInput) (*models.Consultation, error)
	Void(id string) error
	List(date, technicianID string) ([]models.Consultation, error)
}

// DefaultConsultationService implements Service.
type DefaultConsultationService struct {
	Repo         bookingRepo.ConsultationRepository
	Staff        staffRepo.StaffRepository
	Availability availability.Service
	Rotation     rotation.Service
}

// Create validates the proposed interval against the technician's existing
// bookings (with the turnaround buffer on the proposed end), persists the
// consultation, and optionally records the serve on the rotation queue.
func (s *DefaultConsultationService) Create(input CreateInput) (*models.Consultation, error) {
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

	consultation := &models.Consultation{
		ID:             uuid.New().String(),
		TechnicianID:   staff.ID,
		TechnicianName: staff.Name,
		CustomerName:   input.CustomerName,
		Date:           input.Date,
		Start:          start,
		End:            end,
		ClockIn:        input.ClockIn,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(consultation); err != nil {
		return nil, err
	}
	s.Availability.InvalidateTimeline(input.Date, staff.ID)

	if input.ServeQueue {
		// The consultation is already committed; a queue hiccup (for example
		// an uninitialized date) should not roll back the intake record.
		if _, err := s.Rotation.ServeCustomer(input.Date, staff.ID, input.ClockIn); err != nil {
			utils.GetLogger().Warn("consultation saved but queue serve failed",
				zap.String("date", input.Date), zap.String("staffId", staff.ID), zap.Error(err))
		}
	}
	return consultation, nil
}

// Void marks a consultation voided and drops the cached timeline.
func (s *DefaultConsultationService) Void(id string) error {
	consultation, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.SetVoided(id); err != nil {
		return err
	}
	s.Availability.InvalidateTimeline(consultation.Date, consultation.TechnicianID)
	return nil
}

// List returns non-voided consultations for the date, optionally for one
// technician.
func (s *DefaultConsultationService) List(date, technicianID string) ([]models.Consultation, error) {
	return s.Repo.ListByDate(date, technicianID)
}
