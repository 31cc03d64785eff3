package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"burgerqueen/internal/delivery/http/response"
	"burgerqueen/internal/usecase"
)

// PaymentHandler holds dependencies for the payment endpoints.
type PaymentHandler struct {
	payments usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(payments usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent registers a charge attempt with the card processor and
// returns the client secret the frontend uses to collect the card.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var input usecase.CreateIntentInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.payments.CreateIntent(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}
