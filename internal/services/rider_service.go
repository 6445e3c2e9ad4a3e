package services

import (
	"fmt"

	"dahanu/internal/models"
	"dahanu/internal/repositories"
)

// RiderService handles rider registration, availability and approval.
type RiderService struct {
	repo repositories.RiderRepository
}

// NewRiderService creates a new RiderService.
func NewRiderService(repo repositories.RiderRepository) *RiderService {
	return &RiderService{
		repo: repo,
	}
}

// GetAllRiders retrieves every rider, approved or not. The admin approval
// queue and the fleet list both read this.
func (s *RiderService) GetAllRiders() ([]models.Rider, error) {
	return s.repo.GetAll()
}

// DispatchCandidates returns the riders eligible for assignment: online and
// approved. The projection is recomputed on every call.
func (s *RiderService) DispatchCandidates() ([]models.Rider, error) {
	riders, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return models.DispatchCandidates(riders), nil
}

// Register builds a rider from the registration input and stores it. New
// riders start OFFLINE and unapproved, waiting in the admin queue.
func (s *RiderService) Register(in models.RiderInput) (*models.Rider, error) {
	rider, err := models.NewRider(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(rider); err != nil {
		return nil, fmt.Errorf("failed to register rider: %w", err)
	}
	return rider, nil
}

// Approve flips the approval flag and resets the rider to OFFLINE. An
// approved rider leaves the queue but is not yet a dispatch candidate until
// they go online themselves.
func (s *RiderService) Approve(id string) error {
	return s.repo.Approve(id)
}

// UpdateStatus applies the rider's own ONLINE/OFFLINE/BUSY toggle.
func (s *RiderService) UpdateStatus(id string, status models.RiderStatus) error {
	switch status {
	case models.RiderOnline, models.RiderOffline, models.RiderBusy:
	default:
		return fmt.Errorf("invalid rider status: %s", status)
	}
	return s.repo.UpdateStatus(id, status)
}

// UpdateLocation records the rider's last reported coordinates.
func (s *RiderService) UpdateLocation(id string, lat, lng float64) error {
	return s.repo.UpdateLocation(id, lat, lng)
}
