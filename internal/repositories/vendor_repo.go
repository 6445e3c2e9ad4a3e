package repositories

import (
	"dahanu/internal/models"
)

// VendorRepository defines the interface for vendor data access.
type VendorRepository interface {
	// GetApproved returns only customer-visible vendors.
	GetApproved() ([]models.Vendor, error)
	GetAll() ([]models.Vendor, error)
	GetByID(id string) (*models.Vendor, error)
	Create(vendor *models.Vendor) error
	Approve(id string) error
	// UpdateProducts replaces the vendor's whole product catalog.
	UpdateProducts(id string, products models.ProductList) error
}
