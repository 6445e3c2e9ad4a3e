package repositories

import (
	"fmt"

	"dahanu/internal/models"

	"gorm.io/gorm"
)

// BannerRepository defines the interface for banner data access.
type BannerRepository interface {
	GetAll() ([]models.Banner, error)
	Create(banner *models.Banner) error
}

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{
		db: db,
	}
}

// GetAll retrieves all banners.
func (r *GORMBannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get all banners: %w", err)
	}
	return banners, nil
}

// Create inserts a new banner row.
func (r *GORMBannerRepository) Create(banner *models.Banner) error {
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}
