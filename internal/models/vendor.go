package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Product is a catalog entry. Products have no identifier of their own: the
// display name is the key for catalog edits, so names are assumed unique
// within one vendor's catalog (not enforced).
type Product struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Image string  `json:"image,omitempty"`
}

// ProductList is stored as a single JSON column on the vendor row, matching
// how the catalog travels with the vendor object everywhere else.
type ProductList []Product

func (p ProductList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product list: %w", err)
	}
	return string(b), nil
}

func (p *ProductList) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported product list column type %T", src)
	}
	return json.Unmarshal(data, p)
}

// VendorLocation couples the coordinate pair with the street address.
type VendorLocation struct {
	Lat     float64 `json:"lat" gorm:"column:lat"`
	Lng     float64 `json:"lng" gorm:"column:lng"`
	Address string  `json:"address" gorm:"column:address;type:text"`
}

// Vendor represents a service provider. Only approved vendors are
// customer-visible; approval is an admin action.
type Vendor struct {
	ID               string         `json:"id" gorm:"primaryKey;type:varchar(50)"`
	UserID           *string        `json:"user_id,omitempty" gorm:"type:varchar(50)"`
	Name             string         `json:"name" gorm:"type:varchar(100);not null"`
	CategoryIDs      StringList     `json:"category_ids" gorm:"type:text"`
	Description      string         `json:"description" gorm:"type:text"`
	Rating           float64        `json:"rating" gorm:"default:4.0"`
	Location         VendorLocation `json:"location" gorm:"embedded"`
	Contact          string         `json:"contact" gorm:"type:varchar(50)"`
	IsVerified       bool           `json:"is_verified"`
	IsApproved       bool           `json:"is_approved"`
	ImageURL         string         `json:"image_url" gorm:"type:text"`
	SupportsDelivery bool           `json:"supports_delivery"`
	PriceStart       float64        `json:"price_start"`
	Email            string         `json:"email,omitempty" gorm:"type:varchar(100)"`
	Products         ProductList    `json:"products" gorm:"type:text"`
	User             *User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// StringList is stored as a JSON array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", src)
	}
	return json.Unmarshal(data, s)
}

// VendorInput is the required subset for vendor registration.
type VendorInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	CategoryIDs []string `json:"category_ids" validate:"required,min=1"`
	Description string   `json:"description"`
	Contact     string   `json:"contact" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Address     string   `json:"address" validate:"required"`
}

// NewVendor builds a full vendor entity from registration input. New vendors
// start unapproved and unverified; an admin flips the approval flag.
func NewVendor(in VendorInput) (*Vendor, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid vendor input: %w", err)
	}
	return &Vendor{
		ID:          "ven_" + uuid.New().String()[:8],
		Name:        in.Name,
		CategoryIDs: in.CategoryIDs,
		Description: in.Description,
		Rating:      4.0,
		Location:    VendorLocation{Lat: in.Lat, Lng: in.Lng, Address: in.Address},
		Contact:     in.Contact,
		Email:       in.Email,
		Products:    ProductList{},
	}, nil
}
