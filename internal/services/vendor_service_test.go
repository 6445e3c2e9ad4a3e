package services_test

import (
	"fmt"
	"testing"

	"dahanu/internal/models"
	"dahanu/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVendorRepo is a mock implementation of repositories.VendorRepository.
type MockVendorRepo struct {
	mock.Mock
}

func (m *MockVendorRepo) GetApproved() ([]models.Vendor, error) {
	args := m.Called()
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func (m *MockVendorRepo) GetAll() ([]models.Vendor, error) {
	args := m.Called()
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func (m *MockVendorRepo) GetByID(id string) (*models.Vendor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepo) Create(vendor *models.Vendor) error {
	args := m.Called(vendor)
	return args.Error(0)
}

func (m *MockVendorRepo) Approve(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVendorRepo) UpdateProducts(id string, products models.ProductList) error {
	args := m.Called(id, products)
	return args.Error(0)
}

func TestVendorService_GetApprovedVendors(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	expected := []models.Vendor{{ID: "ven_1", IsApproved: true}}
	mockRepo.On("GetApproved").Return(expected, nil).Once()

	vendors, err := service.GetApprovedVendors()

	assert.NoError(t, err)
	assert.Equal(t, expected, vendors)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_Register(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Vendor")).Return(nil).Once()

	vendor, err := service.Register(models.VendorInput{
		Name:        "Dahanu Fresh Mart",
		CategoryIDs: []string{"cat_grocery"},
		Contact:     "9876500001",
		Address:     "Main Bazaar, Dahanu West",
	})

	assert.NoError(t, err)
	assert.Regexp(t, `^ven_[0-9a-f]{8}$`, vendor.ID)
	assert.False(t, vendor.IsApproved)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_UpsertProduct_Add(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	mockRepo.On("GetByID", "ven_1").Return(&models.Vendor{
		ID:       "ven_1",
		Products: models.ProductList{{Name: "Bread Loaf", Price: 40}},
	}, nil).Once()
	mockRepo.On("UpdateProducts", "ven_1", mock.MatchedBy(func(products models.ProductList) bool {
		return len(products) == 2 && products[1].Name == "1kg Fresh Apple"
	})).Return(nil).Once()

	err := service.UpsertProduct("ven_1", models.Product{Name: "1kg Fresh Apple", Price: 180})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_UpsertProduct_ReplacesByName(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	mockRepo.On("GetByID", "ven_1").Return(&models.Vendor{
		ID:       "ven_1",
		Products: models.ProductList{{Name: "Bread Loaf", Price: 40}, {Name: "Milk", Price: 30}},
	}, nil).Once()
	mockRepo.On("UpdateProducts", "ven_1", mock.MatchedBy(func(products models.ProductList) bool {
		return len(products) == 2 && products[0].Name == "Bread Loaf" && products[0].Price == 45
	})).Return(nil).Once()

	err := service.UpsertProduct("ven_1", models.Product{Name: "Bread Loaf", Price: 45})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_UpsertProduct_Invalid(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	err := service.UpsertProduct("ven_1", models.Product{Name: "", Price: 40})
	assert.Error(t, err)

	err = service.UpsertProduct("ven_1", models.Product{Name: "Bread Loaf", Price: 0})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRepo.AssertNotCalled(t, "UpdateProducts", mock.Anything, mock.Anything)
}

func TestVendorService_RemoveProduct(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	mockRepo.On("GetByID", "ven_1").Return(&models.Vendor{
		ID:       "ven_1",
		Products: models.ProductList{{Name: "Bread Loaf", Price: 40}, {Name: "Milk", Price: 30}},
	}, nil).Once()
	mockRepo.On("UpdateProducts", "ven_1", mock.MatchedBy(func(products models.ProductList) bool {
		return len(products) == 1 && products[0].Name == "Milk"
	})).Return(nil).Once()

	err := service.RemoveProduct("ven_1", "Bread Loaf")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestVendorService_RemoveProduct_NotFound(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	mockRepo.On("GetByID", "ven_1").Return(&models.Vendor{ID: "ven_1"}, nil).Once()

	err := service.RemoveProduct("ven_1", "Ghost Product")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertNotCalled(t, "UpdateProducts", mock.Anything, mock.Anything)
}

func TestVendorService_RemoveProduct_UnknownVendor(t *testing.T) {
	mockRepo := new(MockVendorRepo)
	service := services.NewVendorService(mockRepo)

	mockRepo.On("GetByID", "ven_missing").Return(nil, fmt.Errorf("vendor with ID ven_missing not found")).Once()

	err := service.RemoveProduct("ven_missing", "Bread Loaf")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
