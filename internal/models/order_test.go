package models_test

import (
	"regexp"
	"testing"

	"dahanu/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		allowed  bool
	}{
		{models.StatusPending, models.StatusAccepted, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusPending, models.StatusPreparing, false},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusAccepted, models.StatusPreparing, true},
		{models.StatusAccepted, models.StatusRejected, false},
		{models.StatusPreparing, models.StatusOutForDelivery, true},
		{models.StatusPreparing, models.StatusAccepted, false},
		{models.StatusOutForDelivery, models.StatusCompleted, true},
		{models.StatusOutForDelivery, models.StatusPreparing, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusRejected, models.StatusAccepted, false},
	}

	for _, tc := range cases {
		got := models.CanTransition(tc.from, tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, models.StatusCompleted.Terminal())
	assert.True(t, models.StatusRejected.Terminal())
	assert.False(t, models.StatusPending.Terminal())
	assert.False(t, models.StatusAccepted.Terminal())
	assert.False(t, models.StatusPreparing.Terminal())
	assert.False(t, models.StatusOutForDelivery.Terminal())
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, models.ValidOrderStatus(models.StatusPending))
	assert.True(t, models.ValidOrderStatus(models.StatusOutForDelivery))
	assert.False(t, models.ValidOrderStatus("DELIVERED"))
	assert.False(t, models.ValidOrderStatus(""))
}

func TestNewOrderID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{5}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, models.NewOrderID())
	}
}

func TestNewOrder_Defaults(t *testing.T) {
	order, err := models.NewOrder(models.OrderInput{
		VendorID:      "ven_1",
		VendorName:    "Fresh Mart",
		CustomerName:  "Ramesh Patil",
		CustomerPhone: "9876543210",
		ServiceReq:    "2x Bread Loaf",
		Address:       "Dahanu Road, Palghar",
		TotalAmount:   80,
	})

	assert.NoError(t, err)
	assert.Regexp(t, `^ORD-\d{5}$`, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.PaymentUnpaid, order.PaymentStatus)
	assert.Equal(t, "ven_1", *order.VendorID)
	assert.False(t, order.Assigned())
	assert.False(t, order.Date.IsZero())
}

func TestNewOrder_KeepsCallerID(t *testing.T) {
	order, err := models.NewOrder(models.OrderInput{
		ID:            "ORD-12345",
		VendorID:      "ven_1",
		CustomerName:  "Ramesh Patil",
		CustomerPhone: "9876543210",
		ServiceReq:    "1x Milk",
		Address:       "Dahanu Road",
		TotalAmount:   30,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ORD-12345", order.ID)
}

func TestNewOrder_RejectsMissingFields(t *testing.T) {
	_, err := models.NewOrder(models.OrderInput{
		CustomerName: "Ramesh Patil",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order input")
}
