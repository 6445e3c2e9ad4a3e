package repositories

import (
	"fmt"
	"sync"

	"dahanu/internal/models"
)

// MockRiderRepository is an in-memory implementation of RiderRepository.
// It preserves insertion order, which GetAll exposes.
type MockRiderRepository struct {
	riders []models.Rider
	mu     sync.RWMutex
}

// NewMockRiderRepository creates a new instance of MockRiderRepository.
func NewMockRiderRepository() *MockRiderRepository {
	return &MockRiderRepository{}
}

// GetAll returns all riders in insertion order.
func (r *MockRiderRepository) GetAll() ([]models.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Rider, len(r.riders))
	copy(out, r.riders)
	return out, nil
}

// GetByID returns a rider by its ID.
func (r *MockRiderRepository) GetByID(id string) (*models.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rider := range r.riders {
		if rider.ID == id {
			found := rider
			return &found, nil
		}
	}
	return nil, fmt.Errorf("rider with ID %s not found", id)
}

// Create appends a new rider.
func (r *MockRiderRepository) Create(rider *models.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.riders = append(r.riders, *rider)
	return nil
}

// UpdateStatus sets the rider's operational status.
func (r *MockRiderRepository) UpdateStatus(id string, status models.RiderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.riders {
		if r.riders[i].ID == id {
			r.riders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("rider with ID %s not found for status update", id)
}

// UpdateLocation stores the rider's last known coordinates.
func (r *MockRiderRepository) UpdateLocation(id string, lat, lng float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.riders {
		if r.riders[i].ID == id {
			r.riders[i].Location = models.LatLng{Lat: lat, Lng: lng}
			return nil
		}
	}
	return fmt.Errorf("rider with ID %s not found for location update", id)
}

// Approve flips the approval flag and resets the status to OFFLINE.
func (r *MockRiderRepository) Approve(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.riders {
		if r.riders[i].ID == id {
			r.riders[i].IsApproved = true
			r.riders[i].Status = models.RiderOffline
			return nil
		}
	}
	return fmt.Errorf("rider with ID %s not found for approval", id)
}
