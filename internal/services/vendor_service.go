package services

import (
	"fmt"

	"dahanu/internal/models"
	"dahanu/internal/repositories"
)

// VendorService handles vendor registration, approval and catalog edits.
type VendorService struct {
	repo repositories.VendorRepository
}

// NewVendorService creates a new VendorService.
func NewVendorService(repo repositories.VendorRepository) *VendorService {
	return &VendorService{
		repo: repo,
	}
}

// GetApprovedVendors retrieves the customer-visible vendor list.
func (s *VendorService) GetApprovedVendors() ([]models.Vendor, error) {
	return s.repo.GetApproved()
}

// GetAllVendors retrieves every vendor for the admin verification queue.
func (s *VendorService) GetAllVendors() ([]models.Vendor, error) {
	return s.repo.GetAll()
}

// GetVendorByID retrieves a single vendor by its ID.
func (s *VendorService) GetVendorByID(id string) (*models.Vendor, error) {
	return s.repo.GetByID(id)
}

// Register builds a vendor from the registration input and stores it
// unapproved.
func (s *VendorService) Register(in models.VendorInput) (*models.Vendor, error) {
	vendor, err := models.NewVendor(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(vendor); err != nil {
		return nil, fmt.Errorf("failed to register vendor: %w", err)
	}
	return vendor, nil
}

// Approve makes the vendor customer-visible.
func (s *VendorService) Approve(id string) error {
	return s.repo.Approve(id)
}

// UpsertProduct adds a catalog entry, or replaces the entry with the same
// display name. Names key the catalog, so two products sharing a name
// collide.
func (s *VendorService) UpsertProduct(vendorID string, product models.Product) error {
	if product.Name == "" || product.Price <= 0 {
		return fmt.Errorf("product requires a name and a positive price")
	}

	vendor, err := s.repo.GetByID(vendorID)
	if err != nil {
		return err
	}

	products := append(models.ProductList{}, vendor.Products...)
	replaced := false
	for i, p := range products {
		if p.Name == product.Name {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	return s.repo.UpdateProducts(vendorID, products)
}

// RemoveProduct deletes the catalog entry with the given display name.
func (s *VendorService) RemoveProduct(vendorID, name string) error {
	vendor, err := s.repo.GetByID(vendorID)
	if err != nil {
		return err
	}

	products := make(models.ProductList, 0, len(vendor.Products))
	found := false
	for _, p := range vendor.Products {
		if p.Name == name {
			found = true
			continue
		}
		products = append(products, p)
	}
	if !found {
		return fmt.Errorf("product %q not found for vendor %s", name, vendorID)
	}
	return s.repo.UpdateProducts(vendorID, products)
}
