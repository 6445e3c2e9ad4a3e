package handlers

import (
	"log"
	"strings"

	"dahanu/internal/models"
	"dahanu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the browse surface: categories, vendors, banners,
// and vendor catalog edits.
type CatalogHandler struct {
	categories *services.CategoryService
	vendors    *services.VendorService
	banners    *services.BannerService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(categories *services.CategoryService, vendors *services.VendorService, banners *services.BannerService) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		vendors:    vendors,
		banners:    banners,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetCategories)
	router.Post("/categories", h.HandleAddCategory)
	router.Delete("/categories/:id", h.HandleRemoveCategory)

	router.Get("/banners", h.HandleGetBanners)

	vendorRoutes := router.Group("/vendors")
	vendorRoutes.Get("/", h.HandleGetVendors)
	vendorRoutes.Post("/register", h.HandleRegisterVendor)
	vendorRoutes.Patch("/:id/approve", h.HandleApproveVendor)
	vendorRoutes.Put("/:id/products", h.HandleUpsertProduct)
	vendorRoutes.Delete("/:id/products/:name", h.HandleRemoveProduct)
}

// HandleGetCategories returns the category tree, rebuilt from flat rows.
func (h *CatalogHandler) HandleGetCategories(c *fiber.Ctx) error {
	tree, err := h.categories.GetTree()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(tree)
}

// HandleAddCategory stores a new category row, root or nested.
func (h *CatalogHandler) HandleAddCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.categories.Add(&category); err != nil {
		log.Printf("Error adding category: %v", err)
		if strings.Contains(err.Error(), "required") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Category validation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add category",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleRemoveCategory deletes a category and its whole subtree.
func (h *CatalogHandler) HandleRemoveCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.categories.Remove(id); err != nil {
		log.Printf("Error removing category %s: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove category",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetVendors returns only approved vendors.
func (h *CatalogHandler) HandleGetVendors(c *fiber.Ctx) error {
	vendors, err := h.vendors.GetApprovedVendors()
	if err != nil {
		log.Printf("Error getting vendors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vendors",
			"error":   err.Error(),
		})
	}
	return c.JSON(vendors)
}

// HandleRegisterVendor creates an unapproved vendor from registration input.
func (h *CatalogHandler) HandleRegisterVendor(c *fiber.Ctx) error {
	var in models.VendorInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	vendor, err := h.vendors.Register(in)
	if err != nil {
		log.Printf("Error registering vendor: %v", err)
		if strings.Contains(err.Error(), "invalid vendor input") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Vendor validation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register vendor",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"vendor":  vendor,
	})
}

// HandleApproveVendor makes a vendor customer-visible.
func (h *CatalogHandler) HandleApproveVendor(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.vendors.Approve(id); err != nil {
		log.Printf("Error approving vendor %s: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Vendor not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not approve vendor",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpsertProduct adds or replaces a catalog entry, keyed by display
// name.
func (h *CatalogHandler) HandleUpsertProduct(c *fiber.Ctx) error {
	vendorID := c.Params("id")
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.vendors.UpsertProduct(vendorID, product); err != nil {
		log.Printf("Error upserting product for vendor %s: %v", vendorID, err)
		if strings.Contains(err.Error(), "requires a name and a positive price") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product validation failed",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Vendor not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleRemoveProduct deletes a catalog entry by display name.
func (h *CatalogHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	vendorID := c.Params("id")
	name := c.Params("name")

	if err := h.vendors.RemoveProduct(vendorID, name); err != nil {
		log.Printf("Error removing product %q for vendor %s: %v", name, vendorID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product or vendor not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetBanners returns the promotional banners.
func (h *CatalogHandler) HandleGetBanners(c *fiber.Ctx) error {
	banners, err := h.banners.GetAllBanners()
	if err != nil {
		log.Printf("Error getting banners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve banners",
			"error":   err.Error(),
		})
	}
	return c.JSON(banners)
}
