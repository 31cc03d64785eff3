package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "burgerqueen/internal/delivery/context"
	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/errors"
	"burgerqueen/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	foodRepo repository.FoodRepository
	logger   *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	FoodRepo repository.FoodRepository
	Logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		foodRepo: params.FoodRepo,
		logger:   params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the menu items matching the filter.
func (srv *catalogService) List(ctx context.Context, filter repository.FoodFilter) ([]entity.FoodItem, error) {
	items, err := srv.foodRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food items")
	}

	return items, nil
}

// Get returns a single menu item.
func (srv *catalogService) Get(ctx context.Context, id string) (*entity.FoodItem, error) {
	item, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Food not found")
		}
		return nil, errors.Wrap(err, "failed to get food item")
	}

	return item, nil
}

// Create validates and persists a new menu item. Every field is mandatory
// and the price must be non-negative.
func (srv *catalogService) Create(ctx context.Context, input *usecase.FoodInput) (*entity.FoodItem, error) {
	if input.Name == "" || input.Description == "" || input.Image == "" ||
		input.Category == "" || input.Price == nil {
		return nil, domainerrors.ErrValidation.WithMessage("All food item fields are required")
	}
	if *input.Price < 0 {
		return nil, domainerrors.ErrValidation.WithMessage("Price must not be negative")
	}

	item := &entity.FoodItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Image:       input.Image,
		Category:    input.Category,
	}
	if err := srv.foodRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create food item")
	}

	srv.log(ctx).Info("Created food item",
		slog.String("foodID", item.ID), slog.String("name", item.Name))

	return item, nil
}

// Update applies the provided fields to an existing item; zero-valued fields
// keep their current value.
func (srv *catalogService) Update(ctx context.Context, id string, input *usecase.FoodInput) (*entity.FoodItem, error) {
	item, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Food not found")
		}
		return nil, errors.Wrap(err, "failed to load food item")
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.Image != "" {
		item.Image = input.Image
	}
	if input.Category != "" {
		item.Category = input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidation.WithMessage("Price must not be negative")
		}
		item.Price = *input.Price
	}

	if err := srv.foodRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Food not found")
		}
		return nil, errors.Wrap(err, "failed to update food item")
	}

	return item, nil
}

// Delete removes an item from the catalog. Past orders keep their snapshots.
func (srv *catalogService) Delete(ctx context.Context, id string) error {
	if err := srv.foodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Food not found")
		}
		return errors.Wrap(err, "failed to delete food item")
	}

	srv.log(ctx).Info("Deleted food item", slog.String("foodID", id))

	return nil
}
