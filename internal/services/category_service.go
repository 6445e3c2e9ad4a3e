package services

import (
	"fmt"

	"dahanu/internal/models"
	"dahanu/internal/repositories"
)

// CategoryService handles the category tree over its flat row storage.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetTree reconstructs the parent→children tree from the flat rows in a
// single in-memory pass. Root categories are those with a null parent.
func (s *CategoryService) GetTree() ([]models.Category, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return models.BuildCategoryTree(rows), nil
}

// Add stores a new category row under the given parent (nil for a root).
func (s *CategoryService) Add(category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return s.repo.Create(category)
}

// Remove deletes a category together with its whole subtree, keeping the
// flat rows consistent with the tree projection: removing a root drops it
// and all descendants, removing a non-root unlinks the subtree from its
// parent while siblings stay intact.
func (s *CategoryService) Remove(id string) error {
	rows, err := s.repo.GetAll()
	if err != nil {
		return err
	}

	doomed := map[string]bool{id: true}
	// Repeated sweeps collect descendants without assuming row order.
	for grew := true; grew; {
		grew = false
		for _, row := range rows {
			if row.ParentID != nil && doomed[*row.ParentID] && !doomed[row.ID] {
				doomed[row.ID] = true
				grew = true
			}
		}
	}

	// Deletion order is free: the parent FK is ON DELETE SET NULL.
	for _, row := range rows {
		if doomed[row.ID] && row.ID != id {
			if err := s.repo.Delete(row.ID); err != nil {
				return err
			}
		}
	}
	return s.repo.Delete(id)
}
