// Package payment adapts the external card processor. Card data never
// transits this backend; the adapter only creates payment intents and reads
// back their outcome.
package payment

import (
	"context"

	"github.com/pkg/errors"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"burgerqueen/config"
	"burgerqueen/internal/domain/service"
)

// stripeGateway is a concrete implementation of the PaymentGateway interface
// backed by the Stripe API.
type stripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway is the constructor for stripeGateway. It returns a nil
// gateway when Stripe is not configured, which disables payment endpoints.
func NewStripeGateway(cfg *config.Config) service.PaymentGateway {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{
		api:      api,
		currency: cfg.Stripe.Currency,
	}
}

// CreateIntent registers a charge attempt for amount in minor units.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(g.currency),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// RetrieveIntent fetches the current state of a charge attempt, including the
// card summary of the latest charge when one exists.
func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*service.ConfirmedPayment, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")

	intent, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to retrieve payment intent %s", intentID)
	}

	confirmed := &service.ConfirmedPayment{
		IntentID:  intent.ID,
		Succeeded: intent.Status == stripe.PaymentIntentStatusSucceeded,
		Amount:    intent.Amount,
	}

	if charge := intent.LatestCharge; charge != nil {
		confirmed.Receipt = charge.ReceiptURL
		if details := charge.PaymentMethodDetails; details != nil && details.Card != nil {
			confirmed.CardBrand = string(details.Card.Brand)
			confirmed.CardLast4 = details.Card.Last4
		}
	}

	return confirmed, nil
}
