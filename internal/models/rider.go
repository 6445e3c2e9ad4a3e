package models

import (
	"fmt"

	"github.com/google/uuid"
)

// VehicleType enumerates the rider vehicle classes.
type VehicleType string

const (
	VehicleBike    VehicleType = "BIKE"
	VehicleScooter VehicleType = "SCOOTER"
	VehicleCycle   VehicleType = "CYCLE"
)

// RiderStatus enumerates the operational states a rider toggles between.
type RiderStatus string

const (
	RiderOnline  RiderStatus = "ONLINE"
	RiderOffline RiderStatus = "OFFLINE"
	RiderBusy    RiderStatus = "BUSY"
)

// LatLng is a coordinate pair, stored as lat/lng columns but serialized as a
// single location object on the wire.
type LatLng struct {
	Lat float64 `json:"lat" gorm:"column:lat"`
	Lng float64 `json:"lng" gorm:"column:lng"`
}

// Rider represents a delivery rider. Riders are created unapproved via
// registration and approved exactly once by an administrator; they are never
// deleted.
type Rider struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(50)"`
	UserID      *string     `json:"user_id,omitempty" gorm:"type:varchar(50)"`
	Name        string      `json:"name" gorm:"type:varchar(100);not null"`
	Phone       string      `json:"phone" gorm:"type:varchar(20);not null"`
	VehicleType VehicleType `json:"vehicle_type" gorm:"type:varchar(10);not null"`
	Status      RiderStatus `json:"status" gorm:"type:varchar(10);default:OFFLINE"`
	Location    LatLng      `json:"location" gorm:"embedded"`
	IsApproved  bool        `json:"is_approved"`
	Rating      float64     `json:"rating" gorm:"default:5.0"`
	User        *User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// Dispatchable reports whether the rider is eligible for assignment:
// online and approved.
func (r Rider) Dispatchable() bool {
	return r.Status == RiderOnline && r.IsApproved
}

// DispatchCandidates projects the dispatchable subset of riders, preserving
// insertion order. It is recomputed on every call, never cached.
func DispatchCandidates(riders []Rider) []Rider {
	candidates := make([]Rider, 0)
	for _, r := range riders {
		if r.Dispatchable() {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

// RiderInput is the required subset for rider registration.
type RiderInput struct {
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Phone       string      `json:"phone" validate:"required,min=7,max=20"`
	VehicleType VehicleType `json:"vehicle_type" validate:"required,oneof=BIKE SCOOTER CYCLE"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
}

// NewRider builds a full rider entity from registration input: generated id,
// OFFLINE, unapproved, default rating. Missing required fields are rejected.
func NewRider(in RiderInput) (*Rider, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid rider input: %w", err)
	}
	return &Rider{
		ID:          "rider_" + uuid.New().String()[:8],
		Name:        in.Name,
		Phone:       in.Phone,
		VehicleType: in.VehicleType,
		Status:      RiderOffline,
		Location:    LatLng{Lat: in.Lat, Lng: in.Lng},
		IsApproved:  false,
		Rating:      5.0,
	}, nil
}
