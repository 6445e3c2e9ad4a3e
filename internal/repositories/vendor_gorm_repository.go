package repositories

import (
	"fmt"

	"dahanu/internal/models"

	"gorm.io/gorm"
)

// GORMVendorRepository is a GORM implementation of VendorRepository.
type GORMVendorRepository struct {
	db *gorm.DB
}

// NewGORMVendorRepository creates a new instance of GORMVendorRepository.
func NewGORMVendorRepository(db *gorm.DB) *GORMVendorRepository {
	return &GORMVendorRepository{
		db: db,
	}
}

// GetApproved retrieves only approved vendors.
func (r *GORMVendorRepository) GetApproved() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.Where("is_approved = ?", true).Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to get approved vendors: %w", err)
	}
	return vendors, nil
}

// GetAll retrieves all vendors, approved or not. Used by the admin
// verification queue.
func (r *GORMVendorRepository) GetAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all vendors: %w", err)
	}
	return vendors, nil
}

// GetByID retrieves a single vendor by its ID.
func (r *GORMVendorRepository) GetByID(id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("vendor with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get vendor by ID %s: %w", id, err)
	}
	return &vendor, nil
}

// Create inserts a new vendor row.
func (r *GORMVendorRepository) Create(vendor *models.Vendor) error {
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// Approve flips the approval flag, making the vendor customer-visible.
func (r *GORMVendorRepository) Approve(id string) error {
	res := r.db.Model(&models.Vendor{}).Where("id = ?", id).Update("is_approved", true)
	if res.Error != nil {
		return fmt.Errorf("failed to approve vendor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vendor with ID %s not found for approval", id)
	}
	return nil
}

// UpdateProducts replaces the vendor's product catalog column.
func (r *GORMVendorRepository) UpdateProducts(id string, products models.ProductList) error {
	res := r.db.Model(&models.Vendor{}).Where("id = ?", id).Update("products", products)
	if res.Error != nil {
		return fmt.Errorf("failed to update products for vendor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vendor with ID %s not found for product update", id)
	}
	return nil
}
