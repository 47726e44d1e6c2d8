package staffRepo

import (
	"padoo/models"
)

// StaffRepository defines data access for technician profiles.
type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByID(id string) (*models.Staff, error)
	// GetActiveByIDs returns active staff whose id is in the given set.
	GetActiveByIDs(ids []string) ([]models.Staff, error)
	GetAll(status string) ([]models.Staff, error)
	Update(id string, update map[string]interface{}) (*models.Staff, error)
}
