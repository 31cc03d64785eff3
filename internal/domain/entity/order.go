package entity

import "time"

// FulfillmentStatus tracks an order's progress through the kitchen and
// delivery. It only ever advances forward, one step at a time.
type FulfillmentStatus string

const (
	StatusPreparing  FulfillmentStatus = "preparing"
	StatusDelivering FulfillmentStatus = "delivering"
	StatusCompleted  FulfillmentStatus = "completed"
)

// Valid reports whether s is one of the known fulfillment statuses.
func (s FulfillmentStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusDelivering, StatusCompleted:
		return true
	}
	return false
}

// CanAdvanceTo reports whether next is the direct successor of s.
// Transitions never skip a step and never go backward.
func (s FulfillmentStatus) CanAdvanceTo(next FulfillmentStatus) bool {
	switch s {
	case StatusPreparing:
		return next == StatusDelivering
	case StatusDelivering:
		return next == StatusCompleted
	}
	return false
}

// PaymentStatus reflects the outcome of the card charge backing an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentDetails is the opaque card summary attached to an order.
// None of the fields are mandatory; they exist for receipts only.
type PaymentDetails struct {
	CardBrand string `json:"cardBrand,omitempty"`
	CardLast4 string `json:"cardLast4,omitempty"`
	Receipt   string `json:"receipt,omitempty"`
}

// OrderItem is one line of an order. Name, price and image are snapshotted
// from the FoodItem at creation time, so later catalog edits or deletions
// never change what the customer actually bought.
type OrderItem struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"` // Always >= 1.
}

// Order is the core aggregate of the system. It is created exactly once,
// after payment confirmation, and afterwards only its fulfillment status
// may change. The owning user never changes.
type Order struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	UserEmail       string            `json:"userEmail,omitempty"` // Resolved at listing time.
	Items           []OrderItem       `json:"items"`
	Address         string            `json:"address"`
	Payment         string            `json:"payment"` // Payment method tag, e.g. "stripe".
	PaymentStatus   PaymentStatus     `json:"paymentStatus"`
	PaymentDetails  PaymentDetails    `json:"paymentDetails"`
	PaymentIntentID string            `json:"paymentIntentId,omitempty"` // Idempotency key for creation.
	Status          FulfillmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Total returns the order total derived from the snapshotted line items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
