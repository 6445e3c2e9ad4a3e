package services_test

import (
	"testing"

	"dahanu/internal/models"
	"dahanu/internal/repositories"
	"dahanu/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedRider(t *testing.T, repo *repositories.MockRiderRepository, id string, status models.RiderStatus, approved bool) {
	t.Helper()
	err := repo.Create(&models.Rider{
		ID:          id,
		Name:        "Rider " + id,
		Phone:       "98765" + id,
		VehicleType: models.VehicleBike,
		Status:      status,
		IsApproved:  approved,
		Rating:      5.0,
	})
	assert.NoError(t, err)
}

func TestRiderService_Register(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	rider, err := service.Register(models.RiderInput{
		Name:        "Suresh Kamble",
		Phone:       "9876512345",
		VehicleType: models.VehicleScooter,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RiderOffline, rider.Status)
	assert.False(t, rider.IsApproved)

	riders, err := service.GetAllRiders()
	assert.NoError(t, err)
	assert.Len(t, riders, 1)
	assert.Equal(t, rider.ID, riders[0].ID)
}

func TestRiderService_Register_InvalidInput(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	_, err := service.Register(models.RiderInput{Name: "S", Phone: "123", VehicleType: "TRUCK"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rider input")

	riders, _ := service.GetAllRiders()
	assert.Empty(t, riders)
}

func TestRiderService_DispatchCandidates(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	seedRider(t, repo, "rid_1", models.RiderOnline, true)
	seedRider(t, repo, "rid_2", models.RiderOnline, false)
	seedRider(t, repo, "rid_3", models.RiderOffline, true)
	seedRider(t, repo, "rid_4", models.RiderBusy, true)
	seedRider(t, repo, "rid_5", models.RiderOnline, true)

	candidates, err := service.DispatchCandidates()

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "rid_1", candidates[0].ID)
	assert.Equal(t, "rid_5", candidates[1].ID)
}

func TestRiderService_Approve_ResetsToOffline(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	// The rider toggled themselves online while still in the queue.
	seedRider(t, repo, "rid_1", models.RiderOnline, false)

	assert.NoError(t, service.Approve("rid_1"))

	rider, err := repo.GetByID("rid_1")
	assert.NoError(t, err)
	assert.True(t, rider.IsApproved)
	assert.Equal(t, models.RiderOffline, rider.Status)

	// Approval alone never makes a dispatch candidate.
	candidates, err := service.DispatchCandidates()
	assert.NoError(t, err)
	assert.Empty(t, candidates)

	// Going online afterwards does.
	assert.NoError(t, service.UpdateStatus("rid_1", models.RiderOnline))
	candidates, err = service.DispatchCandidates()
	assert.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestRiderService_Approve_UnknownRider(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	err := service.Approve("rid_missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRiderService_UpdateStatus_RejectsUnknownValue(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	seedRider(t, repo, "rid_1", models.RiderOffline, true)

	err := service.UpdateStatus("rid_1", "SLEEPING")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rider status")

	rider, _ := repo.GetByID("rid_1")
	assert.Equal(t, models.RiderOffline, rider.Status)
}

func TestRiderService_UpdateLocation(t *testing.T) {
	repo := repositories.NewMockRiderRepository()
	service := services.NewRiderService(repo)

	seedRider(t, repo, "rid_1", models.RiderOnline, true)

	assert.NoError(t, service.UpdateLocation("rid_1", 19.9670, 72.7340))

	rider, err := repo.GetByID("rid_1")
	assert.NoError(t, err)
	assert.Equal(t, models.LatLng{Lat: 19.9670, Lng: 72.7340}, rider.Location)
}
