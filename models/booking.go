package models

import "time"

// Consultation is a walk-in service record created at intake time.
type Consultation struct {
	ID             string    `bson:"id" json:"id"`
	TechnicianID   string    `bson:"technician_id" json:"technicianId"`
	TechnicianName string    `bson:"technician_name" json:"technicianName"`
	CustomerName   string    `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	Date           string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start          int       `bson:"start" json:"start"`
	End            int       `bson:"end" json:"end"`
	ClockIn        bool      `bson:"clock_in" json:"clockIn"`
	Voided         bool      `bson:"voided" json:"voided"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Reservation status values.
const (
	ReservationBooked    = "booked"
	ReservationCancelled = "cancelled"
)

// Reservation is an advance booking for a named technician.
type Reservation struct {
	ID             string    `bson:"id" json:"id"`
	TechnicianID   string    `bson:"technician_id" json:"technicianId"`
	TechnicianName string    `bson:"technician_name" json:"technicianName"`
	CustomerName   string    `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Date           string    `bson:"date" json:"date"`
	Start          int       `bson:"start" json:"start"`
	End            int       `bson:"end" json:"end"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Booking is the read-only merged view of a consultation or reservation used
// for conflict checks and timeline rendering. Start/End are minutes from
// midnight within the booking's date.
type Booking struct {
	TechnicianID   string `json:"technicianId"`
	TechnicianName string `json:"technicianName"`
	Date           string `json:"date"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	CustomerLabel  string `json:"customerLabel,omitempty"`
	IsReservation  bool   `json:"isReservation"`
}

// BookingFromConsultation maps a consultation into the merged booking view.
func BookingFromConsultation(c Consultation) Booking {
	return Booking{
		TechnicianID:   c.TechnicianID,
		TechnicianName: c.TechnicianName,
		Date:           c.Date,
		Start:          c.Start,
		End:            c.End,
		CustomerLabel:  c.CustomerName,
		IsReservation:  false,
	}
}

// BookingFromReservation maps a reservation into the merged booking view.
func BookingFromReservation(r Reservation) Booking {
	return Booking{
		TechnicianID:   r.TechnicianID,
		TechnicianName: r.TechnicianName,
		Date:           r.Date,
		Start:          r.Start,
		End:            r.End,
		CustomerLabel:  r.CustomerName,
		IsReservation:  true,
	}
}
