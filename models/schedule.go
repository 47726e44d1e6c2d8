package models

// Shift categorizes a technician's working window for a day.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	ShiftOff     Shift = "off"
	ShiftLeave   Shift = "leave"
)

// Working reports whether the shift puts the technician on duty.
func (s Shift) Working() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// ShiftAssignment is one technician's shift for one date.
type ShiftAssignment struct {
	ID      string `bson:"id" json:"id"`
	Date    string `bson:"date" json:"date"` // "YYYY-MM-DD"
	StaffID string `bson:"staff_id" json:"staffId"`
	Shift   Shift  `bson:"shift" json:"shift"`
}

// ShiftWindow is the bookable span for a shift, in minutes from midnight.
type ShiftWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
