package usecase

import "context"

// CreateIntentInput carries the charge amount in minor units (cents).
type CreateIntentInput struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// CreateIntentOutput returns the opaque client secret the presentation layer
// hands to the card processor.
type CreateIntentOutput struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentUsecase creates charge attempts with the external processor.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error)
}
