package service

import "context"

// PaymentIntent is the gateway's handle for an in-progress charge attempt.
// The client secret is handed to the presentation layer, which collects card
// details directly with the processor; card data never transits this backend.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// ConfirmedPayment is the server-side view of a finished charge attempt.
type ConfirmedPayment struct {
	IntentID  string
	Succeeded bool
	Amount    int64 // Minor units actually charged.
	CardBrand string
	CardLast4 string
	Receipt   string // Receipt URL, when the processor provides one.
}

// PaymentGateway adapts the external card processor.
type PaymentGateway interface {
	// CreateIntent registers a charge attempt for amount in minor units
	// and returns the handle the client uses to complete it.
	CreateIntent(ctx context.Context, amount int64) (*PaymentIntent, error)

	// RetrieveIntent fetches the current state of a charge attempt.
	// Order creation calls this to verify success server-side instead of
	// trusting the client's report.
	RetrieveIntent(ctx context.Context, intentID string) (*ConfirmedPayment, error)
}
