package services

import (
	"dahanu/internal/models"
	"dahanu/internal/repositories"
)

// BannerService handles the promotional banner carousel.
type BannerService struct {
	repo repositories.BannerRepository
}

// NewBannerService creates a new BannerService.
func NewBannerService(repo repositories.BannerRepository) *BannerService {
	return &BannerService{
		repo: repo,
	}
}

// GetAllBanners retrieves all banners.
func (s *BannerService) GetAllBanners() ([]models.Banner, error) {
	return s.repo.GetAll()
}

// AddBanner stores a new banner.
func (s *BannerService) AddBanner(banner *models.Banner) error {
	return s.repo.Create(banner)
}
