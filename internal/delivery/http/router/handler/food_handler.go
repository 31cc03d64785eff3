package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"burgerqueen/internal/delivery/http/response"
	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/usecase"
)

// FoodHandler holds dependencies for the menu endpoints.
type FoodHandler struct {
	catalog usecase.CatalogUsecase
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(catalog usecase.CatalogUsecase) *FoodHandler {
	return &FoodHandler{catalog: catalog}
}

// List returns the menu, optionally narrowed by ?category and ?search.
func (h *FoodHandler) List(c echo.Context) error {
	filter := repository.FoodFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	items, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}
	if items == nil {
		items = []entity.FoodItem{}
	}

	return response.OK(c, items)
}

// Get returns a single menu item by ID.
func (h *FoodHandler) Get(c echo.Context) error {
	item, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

// Create adds a menu item. Admin only; enforced by the route group.
func (h *FoodHandler) Create(c echo.Context) error {
	var input usecase.FoodInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.catalog.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, item)
}

// Update modifies the provided fields of a menu item. Admin only.
func (h *FoodHandler) Update(c echo.Context) error {
	var input usecase.FoodInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.catalog.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}

// Delete removes a menu item. Admin only.
func (h *FoodHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Food deleted")
}
