package usecase

import (
	"context"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
)

// FoodInput carries the fields of a menu item. On create all of them are
// mandatory; on update zero-valued fields keep their current value.
type FoodInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
}

// CatalogUsecase manages the menu. Reads are public; writes are restricted
// to administrators at the delivery layer.
type CatalogUsecase interface {
	// List returns the items matching the filter.
	List(ctx context.Context, filter repository.FoodFilter) ([]entity.FoodItem, error)

	// Get returns one item. Fails with ErrNotFound when absent.
	Get(ctx context.Context, id string) (*entity.FoodItem, error)

	// Create validates that every field is present and price is
	// non-negative, then persists the item.
	Create(ctx context.Context, input *FoodInput) (*entity.FoodItem, error)

	// Update applies the provided fields to an existing item.
	// Fails with ErrNotFound when absent.
	Update(ctx context.Context, id string, input *FoodInput) (*entity.FoodItem, error)

	// Delete removes an item. Fails with ErrNotFound when absent.
	// Historical orders keep their snapshots of the item.
	Delete(ctx context.Context, id string) error
}
