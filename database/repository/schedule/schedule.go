package scheduleRepo

import (
	"padoo/models"
)

// ScheduleRepository defines data access for per-date shift assignments.
type ScheduleRepository interface {
	// ReplaceForDate replaces the whole roster for a date.
	ReplaceForDate(date string, assignments []models.ShiftAssignment) error
	GetByDate(date string) ([]models.ShiftAssignment, error)
	// GetOnDuty returns assignments for the date whose shift is a working one
	// (neither off nor leave).
	GetOnDuty(date string) ([]models.ShiftAssignment, error)
}
