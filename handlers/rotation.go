package handlers

import (
	"errors"
	"net/http"

	"padoo/services/rotation"
	"padoo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RotationHandler exposes the rotation queue operations.
type RotationHandler struct {
	Svc    rotation.Service
	Logger *zap.Logger
}

// NewRotationHandler constructs a RotationHandler.
func NewRotationHandler(svc rotation.Service, logger *zap.Logger) *RotationHandler {
	return &RotationHandler{Svc: svc, Logger: logger}
}

// InitQueueHandler creates (or returns) the date's rotation queue.
func (h *RotationHandler) InitQueueHandler(c *gin.Context) {
	date := c.Param("date")
	queue, err := h.Svc.InitQueue(date)
	if err != nil {
		h.Logger.Error("Failed to initialize rotation queue", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to initialize rotation queue", err.Error())
		return
	}
	c.JSON(http.StatusOK, queue)
}

// GetQueueHandler returns the date's rotation queue.
func (h *RotationHandler) GetQueueHandler(c *gin.Context) {
	date := c.Param("date")
	queue, err := h.Svc.GetQueue(date)
	if err != nil {
		if errors.Is(err, rotation.ErrQueueNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Rotation queue not found", err.Error())
			return
		}
		h.Logger.Error("Failed to fetch rotation queue", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch rotation queue", err.Error())
		return
	}
	c.JSON(http.StatusOK, queue)
}

// ServeHandler records a served customer for a staff member.
func (h *RotationHandler) ServeHandler(c *gin.Context) {
	date := c.Param("date")
	var input struct {
		StaffID string `json:"staffId" binding:"required"`
		ClockIn bool   `json:"clockIn"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	queue, err := h.Svc.ServeCustomer(date, input.StaffID, input.ClockIn)
	if err != nil {
		switch {
		case errors.Is(err, rotation.ErrQueueNotFound), errors.Is(err, rotation.ErrStaffNotInQueue):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		default:
			h.Logger.Error("Failed to record serve",
				zap.String("date", date), zap.String("staffId", input.StaffID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to record serve", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, queue)
}

// MoveHandler splices a queue entry to a new position.
func (h *RotationHandler) MoveHandler(c *gin.Context) {
	date := c.Param("date")
	var input struct {
		FromIndex *int `json:"fromIndex" binding:"required"`
		ToIndex   *int `json:"toIndex" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	queue, err := h.Svc.MoveEntry(date, *input.FromIndex, *input.ToIndex)
	if err != nil {
		switch {
		case errors.Is(err, rotation.ErrQueueNotFound):
			utils.JSONError(c, http.StatusNotFound, "Rotation queue not found", err.Error())
		case errors.Is(err, rotation.ErrIndexOutOfRange):
			utils.JSONError(c, http.StatusBadRequest, "Index out of range", err.Error())
		default:
			h.Logger.Error("Failed to move queue entry", zap.String("date", date), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to move queue entry", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, queue)
}
