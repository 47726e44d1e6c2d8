package handlers

import (
	"net/http"

	staffRepo "padoo/database/repository/staff"
	"padoo/models"
	"padoo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StaffHandler exposes technician profile management.
type StaffHandler struct {
	Repo   staffRepo.StaffRepository
	Logger *zap.Logger
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(repo staffRepo.StaffRepository, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{Repo: repo, Logger: logger}
}

// RegisterStaffHandler creates a new technician profile.
func (h *StaffHandler) RegisterStaffHandler(c *gin.Context) {
	var input struct {
		Name   string `json:"name" binding:"required"`
		Avatar string `json:"avatar"`
		Phone  string `json:"phone"`
		Gender string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	staff := &models.Staff{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Avatar: input.Avatar,
		Phone:  input.Phone,
		Gender: input.Gender,
		Status: models.StaffStatusActive,
	}
	if err := h.Repo.Create(staff); err != nil {
		h.Logger.Error("Failed to create staff", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create staff", err.Error())
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// GetStaffHandler returns one technician profile.
func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	id := c.Param("id")
	staff, err := h.Repo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Staff not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

// ListStaffHandler lists technician profiles, optionally by status.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	list, err := h.Repo.GetAll(c.Query("status"))
	if err != nil {
		h.Logger.Error("Failed to list staff", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": list})
}

// UpdateStaffHandler patches a technician profile. Queue entries snapshot the
// profile at creation time, so edits here never rewrite existing queues.
func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Name   *string `json:"name"`
		Avatar *string `json:"avatar"`
		Phone  *string `json:"phone"`
		Gender *string `json:"gender"`
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	update := map[string]interface{}{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Avatar != nil {
		update["avatar"] = *input.Avatar
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.Gender != nil {
		update["gender"] = *input.Gender
	}
	if input.Status != nil {
		if *input.Status != models.StaffStatusActive && *input.Status != models.StaffStatusInactive {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "status must be active or inactive")
			return
		}
		update["status"] = *input.Status
	}
	if len(update) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "no fields to update")
		return
	}

	staff, err := h.Repo.Update(id, update)
	if err != nil {
		h.Logger.Error("Failed to update staff", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}
