package usecase

import (
	"context"

	"burgerqueen/internal/domain/entity"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	FoodID   string `json:"food" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// PaymentDetailsInput is the card summary the client reports. When the
// gateway can be queried server-side, its answer overrides these fields.
type PaymentDetailsInput struct {
	CardBrand string `json:"cardBrand"`
	CardLast4 string `json:"cardLast4"`
	Receipt   string `json:"receipt"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items           []OrderItemInput    `json:"items" validate:"required,min=1,dive"`
	Address         string              `json:"address" validate:"required"`
	Payment         string              `json:"payment" validate:"required"`
	PaymentIntentID string              `json:"paymentIntentId"`
	PaymentDetails  PaymentDetailsInput `json:"paymentDetails"`
}

// OrderUsecase is the order lifecycle service. It creates orders only after
// payment confirmation, enforces forward-only status transitions, and scopes
// visibility per user.
type OrderUsecase interface {
	// Create places an order for user. The payment intent is verified with
	// the gateway before anything is persisted; an already-processed
	// intent returns the existing order unchanged.
	Create(ctx context.Context, user *entity.User, input *CreateOrderInput) (*entity.Order, error)

	// ListForUser returns the orders owned by user, newest first.
	ListForUser(ctx context.Context, user *entity.User) ([]entity.Order, error)

	// ListAll returns every order, newest first, with the owner resolved
	// to their email. Administrator only; enforced at the delivery layer.
	ListAll(ctx context.Context) ([]entity.Order, error)

	// UpdateStatus advances an order's fulfillment status. The new status
	// must be the direct successor of the current one.
	UpdateStatus(ctx context.Context, orderID string, status string) (*entity.Order, error)
}
