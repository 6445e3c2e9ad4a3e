package client

import (
	"time"

	"dahanu/internal/models"
)

// The fallback datasets below are substituted only when the dispatch API is
// unreachable at the transport level. They are fixed seeds, never refreshed
// and never merged with server data.

func strPtr(s string) *string { return &s }

// FallbackCategories returns the seed category tree.
func FallbackCategories() []models.Category {
	return []models.Category{
		{
			ID: "cat_grocery", Name: "Groceries", Icon: "ShoppingBasket",
			Description: "Daily essentials delivered from local stores",
			ThemeColor:  "#43A047", RegistrationFee: 999,
			SubCategories: []models.Category{
				{ID: "cat_fruits", Name: "Fruits & Vegetables", Icon: "Apple", ParentID: strPtr("cat_grocery"), ThemeColor: "#43A047"},
				{ID: "cat_dairy", Name: "Dairy & Bakery", Icon: "ShoppingBasket", ParentID: strPtr("cat_grocery"), ThemeColor: "#43A047"},
			},
		},
		{
			ID: "cat_food", Name: "Food Delivery", Icon: "Utensils",
			Description: "Restaurants and home kitchens",
			ThemeColor:  "#E65100", RegistrationFee: 999,
		},
		{
			ID: "cat_medical", Name: "Medical", Icon: "Stethoscope",
			Description: "Pharmacies and clinics",
			ThemeColor:  "#1565C0", RegistrationFee: 499,
		},
		{
			ID: "cat_services", Name: "Home Services", Icon: "Hammer",
			Description: "Repairs, cleaning and events",
			ThemeColor:  "#6A1B9A", RegistrationFee: 1499,
			SubCategories: []models.Category{
				{ID: "cat_cleaning", Name: "Cleaning", Icon: "SprayCan", ParentID: strPtr("cat_services"), ThemeColor: "#6A1B9A"},
				{ID: "cat_events", Name: "Events", Icon: "PartyPopper", ParentID: strPtr("cat_services"), ThemeColor: "#6A1B9A"},
			},
		},
	}
}

// FallbackVendors returns the seed vendor list. All seeds are approved,
// matching the vendors endpoint's contract.
func FallbackVendors() []models.Vendor {
	return []models.Vendor{
		{
			ID: "ven_seed_1", Name: "Dahanu Fresh Mart",
			CategoryIDs: models.StringList{"cat_grocery"},
			Description: "Fruits, vegetables and daily essentials",
			Rating:      4.5,
			Location:    models.VendorLocation{Lat: 19.9670, Lng: 72.7340, Address: "Main Bazaar, Dahanu West"},
			Contact:     "9876500001",
			IsVerified:  true, IsApproved: true,
			SupportsDelivery: true, PriceStart: 49,
			Products: models.ProductList{
				{Name: "1kg Fresh Apple", Price: 180},
				{Name: "Bread Loaf", Price: 40},
			},
		},
		{
			ID: "ven_seed_2", Name: "Coastal Medicos",
			CategoryIDs: models.StringList{"cat_medical"},
			Description: "24x7 pharmacy near the station",
			Rating:      4.2,
			Location:    models.VendorLocation{Lat: 19.9731, Lng: 72.7120, Address: "Station Road, Dahanu"},
			Contact:     "9876500002",
			IsVerified:  true, IsApproved: true,
			SupportsDelivery: true, PriceStart: 99,
		},
	}
}

// FallbackBanners returns the seed carousel.
func FallbackBanners() []models.Banner {
	return []models.Banner{
		{ID: "ban_seed_1", ImageURL: "/assets/banners/monsoon-offers.jpg", Link: "/category/cat_grocery", AltText: "Monsoon grocery offers"},
		{ID: "ban_seed_2", ImageURL: "/assets/banners/rider-signup.jpg", Link: "/rider/register", AltText: "Earn with us, become a rider"},
	}
}

// FallbackOrders returns the seed order book: one unassigned PENDING order.
func FallbackOrders() []models.Order {
	vendorID := "ven_seed_1"
	return []models.Order{
		{
			ID:            "ORD-00001",
			VendorID:      &vendorID,
			VendorName:    "Dahanu Fresh Mart",
			CustomerName:  "Ramesh Patil",
			CustomerPhone: "9876543210",
			Date:          time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
			Status:        models.StatusPending,
			Address:       "Dahanu Road, Palghar",
			TotalAmount:   220,
			PaymentStatus: models.PaymentUnpaid,
			ServiceReq:    "1x 1kg Fresh Apple, 1x Bread Loaf",
		},
	}
}
