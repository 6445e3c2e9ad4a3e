package handlers

import (
	"log"
	"strings"

	"dahanu/internal/models"
	"dahanu/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders and rider dispatch.
type OrderHandler struct {
	service  *services.DispatchService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.DispatchService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Patch("/:id/assign", h.HandleAssignRider)
}

// HandleGetOrders retrieves all orders with denormalized vendor_name,
// rider_name and rider_phone, newest first. No pagination.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleCreateOrder creates a new PENDING order. The id may be supplied by
// the caller (the ordering flow generates ORD-<5 digits> ids up front).
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var in models.OrderInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.CreateOrder(in)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if strings.Contains(err.Error(), "invalid order input") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order validation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrderStatus applies a vendor-driven status transition. The
// caller is not checked against the order's vendor; the state machine is the
// only guard.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status models.OrderStatus `json:"status" validate:"required"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	if err := h.service.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "invalid order status") ||
			strings.Contains(err.Error(), "cannot move") ||
			strings.Contains(err.Error(), "no further transition") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Transition rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleAssignRider attaches a rider to an order, forcing the status to
// ACCEPTED. No availability or ownership check happens here; the response is
// a bare success flag, not the updated row.
func (h *OrderHandler) HandleAssignRider(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var body struct {
		RiderID string `json:"riderId" validate:"required"`
	}

	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing assign body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := h.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "riderId is required",
		})
	}

	if err := h.service.AssignRider(orderID, body.RiderID); err != nil {
		log.Printf("Error assigning rider %s to order %s: %v", body.RiderID, orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
