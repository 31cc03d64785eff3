package repository

import (
	"context"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/errors"
)

// ErrFoodNotFound is returned when no food item matches the lookup.
var ErrFoodNotFound = errors.New("food item not found")

// FoodFilter narrows a catalog listing. Zero values mean "no constraint".
type FoodFilter struct {
	Category string // Exact match on the category tag.
	Search   string // Case-insensitive substring match on the name.
}

// FoodRepository persists the menu catalog.
type FoodRepository interface {
	// Create persists a new food item and fills in the assigned ID.
	Create(ctx context.Context, item *entity.FoodItem) error

	// FindByID retrieves a single item. Returns ErrFoodNotFound if the id
	// is unknown or malformed.
	FindByID(ctx context.Context, id string) (*entity.FoodItem, error)

	// List returns all items matching the filter. The only guarantee on
	// result order is stable enumeration.
	List(ctx context.Context, filter FoodFilter) ([]entity.FoodItem, error)

	// Update replaces an existing item. Returns ErrFoodNotFound when absent.
	Update(ctx context.Context, item *entity.FoodItem) error

	// Delete removes an item. Returns ErrFoodNotFound when absent.
	// Historical order line items keep their snapshots and are unaffected.
	Delete(ctx context.Context, id string) error
}
