package models

import (
	"fmt"
	"math/rand"
	"time"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusAccepted       OrderStatus = "ACCEPTED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusCompleted      OrderStatus = "COMPLETED"
	StatusRejected       OrderStatus = "REJECTED"
)

// PaymentStatus enumerates the payment states. Payment collection itself is
// handled outside this system; we only record the flag.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAID"
	PaymentUnpaid PaymentStatus = "UNPAID"
)

// orderTransitions is the forward state machine for vendor-driven updates.
// COMPLETED and REJECTED are terminal. Rider assignment does NOT consult this
// table: assigning a rider forces ACCEPTED regardless of the prior status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusAccepted, StatusRejected},
	StatusAccepted:       {StatusPreparing},
	StatusPreparing:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusCompleted},
	StatusCompleted:      {},
	StatusRejected:       {},
}

// ValidOrderStatus reports whether s is a known lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to the next.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is accepted from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Order represents a delivery order. VendorName, RiderName and RiderPhone are
// denormalized display fields filled by the list query's LEFT JOINs; they are
// never written back to the orders table.
type Order struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(50)"`
	VendorID      *string       `json:"vendor_id" gorm:"type:varchar(50)"`
	RiderID       *string       `json:"rider_id" gorm:"type:varchar(50)"`
	VendorName    string        `json:"vendor_name,omitempty" gorm:"-"`
	RiderName     string        `json:"rider_name,omitempty" gorm:"-"`
	RiderPhone    string        `json:"rider_phone,omitempty" gorm:"-"`
	CustomerName  string        `json:"customer_name" gorm:"type:varchar(100)"`
	CustomerPhone string        `json:"customer_phone" gorm:"type:varchar(20)"`
	Date          time.Time     `json:"date"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);default:PENDING"`
	Address       string        `json:"address" gorm:"type:text"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(10);default:UNPAID"`
	ServiceReq    string        `json:"service_requested" gorm:"column:service_requested;type:text"`

	// Association fields declare the schema's ON DELETE SET NULL contracts;
	// reads never preload them.
	Vendor *Vendor `json:"-" gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL"`
	Rider  *Rider  `json:"-" gorm:"foreignKey:RiderID;constraint:OnDelete:SET NULL"`
}

// Assigned reports whether the order has a rider attached.
func (o Order) Assigned() bool {
	return o.RiderID != nil && *o.RiderID != ""
}

// OrderInput is the required subset for placing an order. The id is caller
// generated so the ordering flow can show it before the server confirms.
type OrderInput struct {
	ID            string  `json:"id"`
	VendorID      string  `json:"vendor_id" validate:"required"`
	VendorName    string  `json:"vendor_name"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerPhone string  `json:"customer_phone" validate:"required"`
	ServiceReq    string  `json:"service_requested" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	TotalAmount   float64 `json:"total_amount" validate:"gte=0"`
}

// NewOrderID generates a display-friendly order identifier of the form
// ORD-<5 digits>.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%05d", rand.Intn(90000)+10000)
}

// NewOrder builds a full order from the required input subset, defaulting the
// optional fields. Missing required fields are rejected.
func NewOrder(in OrderInput) (*Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid order input: %w", err)
	}
	id := in.ID
	if id == "" {
		id = NewOrderID()
	}
	vendorID := in.VendorID
	return &Order{
		ID:            id,
		VendorID:      &vendorID,
		VendorName:    in.VendorName,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Date:          time.Now(),
		Status:        StatusPending,
		Address:       in.Address,
		TotalAmount:   in.TotalAmount,
		PaymentStatus: PaymentUnpaid,
		ServiceReq:    in.ServiceReq,
	}, nil
}
