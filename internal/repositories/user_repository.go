package repositories

import "dahanu/internal/models"

// UserRepository defines the interface for user data access. Accounts are
// keyed by email; there is no separate username.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
