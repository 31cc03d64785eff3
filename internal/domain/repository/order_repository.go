package repository

import (
	"context"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/errors"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// ErrStaleOrderStatus is returned when a conditional status update finds the
// order no longer in the expected status, meaning a concurrent update won.
var ErrStaleOrderStatus = errors.New("order status changed concurrently")

// OrderRepository persists the order aggregate. Orders are append-only:
// once created they are never deleted, only their fulfillment status moves.
type OrderRepository interface {
	// Create persists a new order and fills in the assigned ID and
	// creation timestamp.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order. Returns ErrOrderNotFound if the
	// id is unknown or malformed.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByPaymentIntentID looks up the order created for a payment
	// intent, if any. Returns ErrOrderNotFound when absent. Backed by a
	// unique index so a client retry cannot produce a duplicate order.
	FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error)

	// ListByUser returns all orders owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)

	// ListAll returns every order across all users, newest first.
	ListAll(ctx context.Context) ([]entity.Order, error)

	// UpdateStatus moves the fulfillment status of an order from the
	// expected current status to the new one and returns the updated
	// document. The write is conditional on the order still being in the
	// expected status; a filter miss returns ErrStaleOrderStatus (orders
	// are never deleted, so a miss means a concurrent update won). Returns
	// ErrOrderNotFound for a malformed id. Transition legality is enforced
	// by the order service, not here.
	UpdateStatus(ctx context.Context, id string, from, to entity.FulfillmentStatus) (*entity.Order, error)
}
