package repositories

import (
	"database/sql"
	"fmt"

	"dahanu/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// orderRow carries the joined display columns alongside the order columns.
type orderRow struct {
	models.Order
	VendorName sql.NullString
	RiderName  sql.NullString
	RiderPhone sql.NullString
}

// GetAll retrieves all orders left-joined with vendor and rider display
// fields, ordered by descending creation time. No pagination; the result set
// is assumed small at target scale.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var rows []orderRow
	err := r.db.Raw(`
		SELECT o.*, v.name AS vendor_name, rd.name AS rider_name, rd.phone AS rider_phone
		FROM orders o
		LEFT JOIN vendors v ON o.vendor_id = v.id
		LEFT JOIN riders rd ON o.rider_id = rd.id
		ORDER BY o.date DESC`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		order := row.Order
		order.VendorName = row.VendorName.String
		order.RiderName = row.RiderName.String
		order.RiderPhone = row.RiderPhone.String
		orders = append(orders, order)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create inserts a new order row.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = models.NewOrderID()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	return nil
}

// AssignRider sets the rider reference and forces ACCEPTED in one UPDATE,
// mirroring overwrite semantics: a previous assignment is silently replaced,
// and an unknown order matches zero rows without erroring.
func (r *GORMOrderRepository) AssignRider(orderID, riderID string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"rider_id": riderID,
		"status":   models.StatusAccepted,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to assign rider to order %s: %w", orderID, res.Error)
	}
	return nil
}
