package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "burgerqueen/internal/delivery/context"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/domain/service"
	"burgerqueen/internal/usecase"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway service.PaymentGateway `optional:"true"`
	Logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

// CreateIntent registers a charge attempt with the processor and returns the
// client secret the presentation layer needs to collect the card.
func (srv *paymentService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	if srv.gateway == nil {
		return nil, domainerrors.ErrPaymentFailed.WithMessage("Payments are not configured")
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidation.WithMessage("Amount is required and must be a positive number of cents")
	}

	intent, err := srv.gateway.CreateIntent(ctx, input.Amount)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
		logger.Error("Payment intent creation failed", slog.Any("error", err))
		return nil, domainerrors.ErrPaymentFailed.WithMessage("Payment intent creation failed")
	}

	return &usecase.CreateIntentOutput{ClientSecret: intent.ClientSecret}, nil
}
