package services

import (
	"encoding/json"
	"fmt"
	"log"

	"dahanu/internal/models"
	"dahanu/internal/repositories"
)

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables eventing; failures are logged, never fatal.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// DispatchService owns the order lifecycle: creation, vendor-driven status
// transitions, and admin rider assignment.
type DispatchService struct {
	orderRepo repositories.OrderRepository
	events    EventPublisher
}

// NewDispatchService creates a new DispatchService.
func NewDispatchService(orderRepo repositories.OrderRepository, events EventPublisher) *DispatchService {
	return &DispatchService{
		orderRepo: orderRepo,
		events:    events,
	}
}

// GetAllOrders retrieves all orders with denormalized vendor and rider
// display fields, newest first.
func (s *DispatchService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *DispatchService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder builds and stores a new PENDING order from the required input
// subset.
func (s *DispatchService) CreateOrder(in models.OrderInput) (*models.Order, error) {
	order, err := models.NewOrder(in)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"orderID":  order.ID,
		"vendorID": in.VendorID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})
	return order, nil
}

// UpdateOrderStatus applies a vendor-driven transition. The forward state
// machine is enforced here: PENDING may go to ACCEPTED or REJECTED, each
// later state has exactly one successor, and COMPLETED/REJECTED are terminal.
func (s *DispatchService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return fmt.Errorf("order %s is %s and accepts no further transition", id, order.Status)
	}
	if !models.CanTransition(order.Status, status) {
		return fmt.Errorf("order %s cannot move from %s to %s", id, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publish("order.status_changed", map[string]interface{}{
		"orderID": id,
		"from":    order.Status,
		"to":      status,
	})
	return nil
}

// AssignRider attaches a rider to an order and forces the status to ACCEPTED,
// regardless of the order's prior status or prior rider. There is
// deliberately no check that the rider is online or approved: the candidate
// list shown to the administrator is the only gate, and reassignment
// silently overwrites the previous rider. Only the rider_id foreign key
// constrains the value.
func (s *DispatchService) AssignRider(orderID, riderID string) error {
	if err := s.orderRepo.AssignRider(orderID, riderID); err != nil {
		return fmt.Errorf("failed to assign rider %s to order %s: %w", riderID, orderID, err)
	}

	s.publish("order.rider_assigned", map[string]interface{}{
		"orderID": orderID,
		"riderID": riderID,
		"status":  models.StatusAccepted,
	})
	return nil
}

// publish sends an order event, tolerating a missing broker.
func (s *DispatchService) publish(routingKey string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.events.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
