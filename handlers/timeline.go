package handlers

import (
	"errors"
	"net/http"
	"time"

	"padoo/services/availability"
	"padoo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimelineHandler exposes the per-technician availability timeline.
type TimelineHandler struct {
	Svc    availability.Service
	Logger *zap.Logger
}

// NewTimelineHandler constructs a TimelineHandler.
func NewTimelineHandler(svc availability.Service, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{Svc: svc, Logger: logger}
}

// GetTimelineHandler returns the technician's bookings and open gaps for a date.
func (h *TimelineHandler) GetTimelineHandler(c *gin.Context) {
	date := c.Param("date")
	technicianID := c.Param("technicianId")

	timeline, err := h.Svc.Timeline(date, technicianID, time.Now())
	if err != nil {
		if errors.Is(err, availability.ErrNotOnDuty) {
			utils.JSONError(c, http.StatusNotFound, "Technician not on duty", err.Error())
			return
		}
		h.Logger.Error("Failed to build timeline",
			zap.String("date", date), zap.String("technicianId", technicianID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build timeline", err.Error())
		return
	}
	c.JSON(http.StatusOK, timeline)
}
