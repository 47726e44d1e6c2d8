package models

// Gap is a contiguous unbooked span inside a technician's shift window.
type Gap struct {
	Start    int `json:"start"`    // minutes from midnight
	Duration int `json:"duration"` // minutes
}

// Timeline is the per-technician, per-date view returned to the operator UI:
// every live booking plus the open gaps between them.
type Timeline struct {
	TechnicianID string    `json:"technicianId"`
	Date         string    `json:"date"`
	Shift        Shift     `json:"shift"`
	Window       ShiftWindow `json:"window"`
	Bookings     []Booking `json:"bookings"`
	Gaps         []Gap     `json:"gaps"`
}
