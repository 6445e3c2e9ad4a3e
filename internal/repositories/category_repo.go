package repositories

import (
	"dahanu/internal/models"
)

// CategoryRepository defines the interface for category data access.
// Categories are stored as flat rows with a parent reference; tree assembly
// happens above this layer.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
	// Delete removes a row. The parent_id FK is ON DELETE SET NULL, so
	// children of a deleted category are re-rooted at the database level.
	Delete(id string) error
}
