package repositories

import (
	"dahanu/internal/models"
)

// RiderRepository defines the interface for rider data access. Riders are
// never deleted; approval happens exactly once.
type RiderRepository interface {
	GetAll() ([]models.Rider, error)
	GetByID(id string) (*models.Rider, error)
	Create(rider *models.Rider) error
	UpdateStatus(id string, status models.RiderStatus) error
	UpdateLocation(id string, lat, lng float64) error
	// Approve flips the approval flag and resets the status to OFFLINE.
	Approve(id string) error
}
