package handlers

import (
	"net/http"

	scheduleRepo "padoo/database/repository/schedule"
	"padoo/models"
	"padoo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the per-date shift roster.
type ScheduleHandler struct {
	Repo   scheduleRepo.ScheduleRepository
	Logger *zap.Logger
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(repo scheduleRepo.ScheduleRepository, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo, Logger: logger}
}

var validShifts = map[models.Shift]bool{
	models.ShiftMorning: true,
	models.ShiftEvening: true,
	models.ShiftOff:     true,
	models.ShiftLeave:   true,
}

// SetScheduleHandler replaces the whole roster for a date.
func (h *ScheduleHandler) SetScheduleHandler(c *gin.Context) {
	date := c.Param("date")
	var input struct {
		Assignments []struct {
			StaffID string       `json:"staffId" binding:"required"`
			Shift   models.Shift `json:"shift" binding:"required"`
		} `json:"assignments" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	assignments := make([]models.ShiftAssignment, 0, len(input.Assignments))
	for _, a := range input.Assignments {
		if !validShifts[a.Shift] {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown shift "+string(a.Shift))
			return
		}
		assignments = append(assignments, models.ShiftAssignment{
			ID:      uuid.New().String(),
			Date:    date,
			StaffID: a.StaffID,
			Shift:   a.Shift,
		})
	}

	if err := h.Repo.ReplaceForDate(date, assignments); err != nil {
		h.Logger.Error("Failed to set schedule", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "assignments": assignments})
}

// GetScheduleHandler returns the roster for a date.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	date := c.Param("date")
	assignments, err := h.Repo.GetByDate(date)
	if err != nil {
		h.Logger.Error("Failed to fetch schedule", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "assignments": assignments})
}
