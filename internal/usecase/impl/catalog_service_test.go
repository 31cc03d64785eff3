package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/errors"
	mockRepo "burgerqueen/internal/mocks/repository"
	"burgerqueen/internal/usecase"
)

type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	foodRepo *mockRepo.MockFoodRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	foodRepo := &mockRepo.MockFoodRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		FoodRepo: foodRepo,
		Logger:   logger,
	})

	return catalogServiceFixtures{service: svc, foodRepo: foodRepo}
}

func floatPtr(v float64) *float64 { return &v }

func TestCatalogService_List_PassesFilter(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	filter := repository.FoodFilter{Category: "burgers", Search: "cheese"}
	fx.foodRepo.On("List", ctx, filter).Return([]entity.FoodItem{
		{ID: "64f0c7e2a1b2c3d4e5f60701", Name: "Cheeseburger", Category: "burgers"},
	}, nil)

	items, err := fx.service.List(ctx, filter)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cheeseburger", items[0].Name)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.foodRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrFoodNotFound)

	item, err := fx.service.Get(ctx, "missing")

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_Create_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.foodRepo.On("Create", ctx, &entity.FoodItem{
		Name:        "Double Whopper",
		Description: "Two flame-grilled patties",
		Price:       12.49,
		Image:       "https://cdn.example.com/double-whopper.png",
		Category:    "burgers",
	}).Return(nil)

	item, err := fx.service.Create(ctx, &usecase.FoodInput{
		Name:        "Double Whopper",
		Description: "Two flame-grilled patties",
		Price:       floatPtr(12.49),
		Image:       "https://cdn.example.com/double-whopper.png",
		Category:    "burgers",
	})

	require.NoError(t, err)
	assert.Equal(t, 12.49, item.Price)
	fx.foodRepo.AssertExpectations(t)
}

func TestCatalogService_Create_MissingFields(t *testing.T) {
	fx := createTestCatalogService(t)

	cases := map[string]*usecase.FoodInput{
		"no name":        {Description: "d", Price: floatPtr(1), Image: "i", Category: "c"},
		"no description": {Name: "n", Price: floatPtr(1), Image: "i", Category: "c"},
		"no price":       {Name: "n", Description: "d", Image: "i", Category: "c"},
		"no image":       {Name: "n", Description: "d", Price: floatPtr(1), Category: "c"},
		"no category":    {Name: "n", Description: "d", Price: floatPtr(1), Image: "i"},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			item, err := fx.service.Create(context.Background(), input)
			assert.Nil(t, item)
			assert.True(t, errors.Is(err, domainerrors.ErrValidation))
		})
	}
}

func TestCatalogService_Create_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	item, err := fx.service.Create(context.Background(), &usecase.FoodInput{
		Name:        "Free Lunch",
		Description: "d",
		Price:       floatPtr(-1),
		Image:       "i",
		Category:    "c",
	})

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestCatalogService_Update_Partial(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	current := &entity.FoodItem{
		ID:          "64f0c7e2a1b2c3d4e5f60701",
		Name:        "Whopper",
		Description: "Flame-grilled",
		Price:       8.99,
		Image:       "https://cdn.example.com/whopper.png",
		Category:    "burgers",
	}
	fx.foodRepo.On("FindByID", ctx, current.ID).Return(current, nil)
	fx.foodRepo.On("Update", ctx, current).Return(nil)

	// Only the price changes; every omitted field keeps its value.
	item, err := fx.service.Update(ctx, current.ID, &usecase.FoodInput{Price: floatPtr(9.49)})

	require.NoError(t, err)
	assert.Equal(t, 9.49, item.Price)
	assert.Equal(t, "Whopper", item.Name)
	assert.Equal(t, "Flame-grilled", item.Description)
	assert.Equal(t, "burgers", item.Category)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.foodRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrFoodNotFound)

	item, err := fx.service.Update(ctx, "missing", &usecase.FoodInput{Name: "x"})

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.foodRepo.On("Delete", ctx, "missing").Return(repository.ErrFoodNotFound)

	err := fx.service.Delete(ctx, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
