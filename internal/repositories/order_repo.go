package repositories

import (
	"dahanu/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted, so there is no Delete.
type OrderRepository interface {
	// GetAll returns every order with the vendor name and rider name/phone
	// denormalized from their source tables, newest first.
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	// AssignRider sets the order's rider reference and forces the status to
	// ACCEPTED in the same statement, whatever the prior status or rider.
	AssignRider(orderID, riderID string) error
}
