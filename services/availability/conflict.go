package availability

import (
	"errors"

	"padoo/models"
)

var (
	// ErrTimeConflict is returned when a proposed interval (including any
	// turnaround buffer) overlaps an existing booking for the technician.
	ErrTimeConflict = errors.New("technician already booked in that interval")
	// ErrInvalidInterval is returned when start is not strictly before end.
	ErrInvalidInterval = errors.New("start time must be before end time")
)

// HasConflict reports whether the proposed interval collides with any of the
// technician's existing bookings. Bookings are matched by technician id when
// one is present, falling back to the display name (reservations imported
// from the old book keep only the name).
//
// Callers enforcing a turnaround gap extend the proposed end before calling;
// the stored intervals are never padded.
func HasConflict(existing []models.Booking, technicianID, technicianName string, proposedStart, proposedEnd int) bool {
	for _, b := range existing {
		if !sameTechnician(b, technicianID, technicianName) {
			continue
		}
		if Overlaps(proposedStart, proposedEnd, b.Start, b.End) {
			return true
		}
	}
	return false
}

func sameTechnician(b models.Booking, id, name string) bool {
	if id != "" && b.TechnicianID != "" {
		return b.TechnicianID == id
	}
	return name != "" && b.TechnicianName == name
}
