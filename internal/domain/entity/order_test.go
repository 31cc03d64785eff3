package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFulfillmentStatus_Valid(t *testing.T) {
	assert.True(t, StatusPreparing.Valid())
	assert.True(t, StatusDelivering.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, FulfillmentStatus("").Valid())
	assert.False(t, FulfillmentStatus("cancelled").Valid())
}

func TestFulfillmentStatus_CanAdvanceTo(t *testing.T) {
	cases := []struct {
		from, to FulfillmentStatus
		want     bool
	}{
		{StatusPreparing, StatusDelivering, true},
		{StatusDelivering, StatusCompleted, true},
		{StatusPreparing, StatusCompleted, false},
		{StatusPreparing, StatusPreparing, false},
		{StatusDelivering, StatusPreparing, false},
		{StatusCompleted, StatusDelivering, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusCompleted, StatusPreparing, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrder_Total(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Price: 8.99, Quantity: 2},
		{Price: 3.49, Quantity: 1},
	}}

	assert.InDelta(t, 21.47, order.Total(), 1e-9)

	empty := Order{}
	assert.Zero(t, empty.Total())
}
