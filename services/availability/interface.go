package availability

import (
	"time"

	"padoo/models"
)

// Service exposes the read-side of the engine: merged bookings, conflict
// probes, and the per-technician timeline.
type Service interface {
	// MergedBookings returns the technician's live consultations and
	// reservations for the date as one normalized view.
	MergedBookings(date, technicianID string) ([]models.Booking, error)
	// CheckConflict reports whether the proposed interval collides with any
	// existing booking for the technician on the date.
	CheckConflict(date, technicianID, technicianName string, start, end int) (bool, error)
	// Timeline returns the technician's bookings plus open gaps for the date.
	// now supplies the live-mode anchor when the date is today.
	Timeline(date, technicianID string, now time.Time) (*models.Timeline, error)
	// InvalidateTimeline drops any cached timeline for the technician/date.
	InvalidateTimeline(date, technicianID string)
	// WindowForShift maps a working shift onto its canonical bookable window.
	WindowForShift(shift models.Shift) (models.ShiftWindow, bool)
}
