package repositories

import (
	"fmt"

	"dahanu/internal/models"

	"gorm.io/gorm"
)

// GORMRiderRepository is a GORM implementation of RiderRepository.
type GORMRiderRepository struct {
	db *gorm.DB
}

// NewGORMRiderRepository creates a new instance of GORMRiderRepository.
func NewGORMRiderRepository(db *gorm.DB) *GORMRiderRepository {
	return &GORMRiderRepository{
		db: db,
	}
}

// GetAll retrieves all riders, approved or not.
func (r *GORMRiderRepository) GetAll() ([]models.Rider, error) {
	var riders []models.Rider
	if err := r.db.Find(&riders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all riders: %w", err)
	}
	return riders, nil
}

// GetByID retrieves a single rider by its ID.
func (r *GORMRiderRepository) GetByID(id string) (*models.Rider, error) {
	var rider models.Rider
	if err := r.db.First(&rider, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("rider with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get rider by ID %s: %w", id, err)
	}
	return &rider, nil
}

// Create inserts a new rider row.
func (r *GORMRiderRepository) Create(rider *models.Rider) error {
	if err := r.db.Create(rider).Error; err != nil {
		return fmt.Errorf("failed to create rider: %w", err)
	}
	return nil
}

// UpdateStatus sets the rider's operational status.
func (r *GORMRiderRepository) UpdateStatus(id string, status models.RiderStatus) error {
	res := r.db.Model(&models.Rider{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update rider status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rider with ID %s not found for status update", id)
	}
	return nil
}

// UpdateLocation stores the rider's last known coordinates.
func (r *GORMRiderRepository) UpdateLocation(id string, lat, lng float64) error {
	res := r.db.Model(&models.Rider{}).Where("id = ?", id).Updates(map[string]interface{}{
		"lat": lat,
		"lng": lng,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update rider location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rider with ID %s not found for location update", id)
	}
	return nil
}

// Approve flips the approval flag and resets the status to OFFLINE in one
// statement.
func (r *GORMRiderRepository) Approve(id string) error {
	res := r.db.Model(&models.Rider{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_approved": true,
		"status":      models.RiderOffline,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to approve rider %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("rider with ID %s not found for approval", id)
	}
	return nil
}
