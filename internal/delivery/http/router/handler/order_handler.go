package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"burgerqueen/internal/delivery/http/middleware"
	"burgerqueen/internal/delivery/http/response"
	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/usecase"
)

// OrderHandler holds dependencies for the order endpoints.
type OrderHandler struct {
	orders usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create places an order for the authenticated user.
func (h *OrderHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.orders.Create(c.Request().Context(), user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order)
}

// ListOwn returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListOwn(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.orders.ListForUser(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}
	if orders == nil {
		orders = []entity.Order{}
	}

	return response.OK(c, orders)
}

// ListAll returns every order for the admin panel.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orders.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if orders == nil {
		orders = []entity.Order{}
	}

	return response.OK(c, orders)
}

// statusBody is the admin request to advance an order's status.
type statusBody struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus advances an order's fulfillment status by one step.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var body statusBody
	if err := c.Bind(&body); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&body); err != nil {
		return err
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}
