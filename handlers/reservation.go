package handlers

import (
	"errors"
	"net/http"

	"padoo/services/availability"
	"padoo/services/reservation"
	"padoo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes advance reservation booking.
type ReservationHandler struct {
	Svc    reservation.Service
	Logger *zap.Logger
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc reservation.Service, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// CreateReservationHandler validates and persists a reservation.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var input reservation.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Svc.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTimeConflict):
			utils.JSONError(c, http.StatusConflict, "Time conflict", err.Error())
		case errors.Is(err, availability.ErrBadClock), errors.Is(err, availability.ErrInvalidInterval):
			utils.JSONError(c, http.StatusBadRequest, "Invalid time", err.Error())
		default:
			h.Logger.Error("Failed to create reservation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelReservationHandler marks a reservation cancelled.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Cancel(id); err != nil {
		h.Logger.Error("Failed to cancel reservation", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "cancelled"})
}

// ListReservationsHandler lists a date's booked reservations.
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date query parameter is required")
		return
	}
	list, err := h.Svc.List(date, c.Query("technicianId"))
	if err != nil {
		h.Logger.Error("Failed to list reservations", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}
