package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Staff endpoints.
	RegisterStaffHandler gin.HandlerFunc
	GetStaffHandler      gin.HandlerFunc
	ListStaffHandler     gin.HandlerFunc
	UpdateStaffHandler   gin.HandlerFunc

	// Schedule endpoints.
	SetScheduleHandler gin.HandlerFunc
	GetScheduleHandler gin.HandlerFunc

	// Rotation queue endpoints.
	InitQueueHandler gin.HandlerFunc
	GetQueueHandler  gin.HandlerFunc
	ServeHandler     gin.HandlerFunc
	MoveHandler      gin.HandlerFunc

	// Consultation endpoints.
	CreateConsultationHandler gin.HandlerFunc
	VoidConsultationHandler   gin.HandlerFunc
	ListConsultationsHandler  gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler gin.HandlerFunc
	CancelReservationHandler gin.HandlerFunc
	ListReservationsHandler  gin.HandlerFunc

	// Timeline endpoint.
	GetTimelineHandler gin.HandlerFunc
}
