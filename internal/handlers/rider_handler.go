package handlers

import (
	"log"
	"strings"

	"dahanu/internal/models"
	"dahanu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RiderHandler handles HTTP requests for the rider fleet.
type RiderHandler struct {
	service *services.RiderService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(service *services.RiderService) *RiderHandler {
	return &RiderHandler{
		service: service,
	}
}

// RegisterRoutes registers the rider routes with the Fiber app.
func (h *RiderHandler) RegisterRoutes(router fiber.Router) {
	riderRoutes := router.Group("/riders")
	riderRoutes.Get("/", h.HandleGetRiders)
	riderRoutes.Post("/register", h.HandleRegister)
	riderRoutes.Patch("/:id/location", h.HandleUpdateLocation)
	riderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
	riderRoutes.Patch("/:id/approve", h.HandleApprove)
}

// HandleGetRiders retrieves all riders, approved or not, with the location
// serialized as a {lat,lng} object.
func (h *RiderHandler) HandleGetRiders(c *fiber.Ctx) error {
	riders, err := h.service.GetAllRiders()
	if err != nil {
		log.Printf("Error getting all riders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve riders",
			"error":   err.Error(),
		})
	}
	return c.JSON(riders)
}

// HandleRegister creates an unapproved OFFLINE rider from the registration
// form input.
func (h *RiderHandler) HandleRegister(c *fiber.Ctx) error {
	var in models.RiderInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing rider registration body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	rider, err := h.service.Register(in)
	if err != nil {
		log.Printf("Error registering rider: %v", err)
		if strings.Contains(err.Error(), "invalid rider input") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Rider validation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register rider",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"rider":   rider,
	})
}

// HandleUpdateLocation stores the rider's reported coordinates.
func (h *RiderHandler) HandleUpdateLocation(c *fiber.Ctx) error {
	riderID := c.Params("id")
	var body struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateLocation(riderID, body.Lat, body.Lng); err != nil {
		log.Printf("Error updating location for rider %s: %v", riderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Rider not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update rider location",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpdateStatus applies the rider's own ONLINE/OFFLINE/BUSY toggle.
func (h *RiderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	riderID := c.Params("id")
	var body struct {
		Status models.RiderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateStatus(riderID, body.Status); err != nil {
		log.Printf("Error updating status for rider %s: %v", riderID, err)
		if strings.Contains(err.Error(), "invalid rider status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid rider status",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Rider not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update rider status",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleApprove is the admin approval action: approval flag set, status reset
// to OFFLINE. The rider leaves the queue but stays out of the dispatch
// candidate set until they go online.
func (h *RiderHandler) HandleApprove(c *fiber.Ctx) error {
	riderID := c.Params("id")
	if err := h.service.Approve(riderID); err != nil {
		log.Printf("Error approving rider %s: %v", riderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Rider not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not approve rider",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
