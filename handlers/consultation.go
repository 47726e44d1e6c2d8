package handlers

import (
	"errors"
	"net/http"

	"padoo/services/availability"
	"padoo/services/consultation"
	"padoo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationHandler exposes walk-in consultation intake.
type ConsultationHandler struct {
	Svc    consultation.Service
	Logger *zap.Logger
}

// NewConsultationHandler constructs a ConsultationHandler.
func NewConsultationHandler(svc consultation.Service, logger *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{Svc: svc, Logger: logger}
}

// CreateConsultationHandler validates and persists a walk-in consultation.
func (h *ConsultationHandler) CreateConsultationHandler(c *gin.Context) {
	var input consultation.CreateInput
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
			h.Logger.Error("Failed to create consultation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create consultation", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// VoidConsultationHandler marks a consultation voided.
func (h *ConsultationHandler) VoidConsultationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Void(id); err != nil {
		h.Logger.Error("Failed to void consultation", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to void consultation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "voided": true})
}

// ListConsultationsHandler lists a date's consultations.
func (h *ConsultationHandler) ListConsultationsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date query parameter is required")
		return
	}
	list, err := h.Svc.List(date, c.Query("technicianId"))
	if err != nil {
		h.Logger.Error("Failed to list consultations", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list consultations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultations": list})
}
