// Package usecase provides testify mocks for the usecase interfaces,
// used by delivery-layer tests.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/usecase"
)

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.SessionOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.SessionOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ValidateSession(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCatalogUsecase mocks usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

var _ usecase.CatalogUsecase = (*MockCatalogUsecase)(nil)

func (m *MockCatalogUsecase) List(ctx context.Context, filter repository.FoodFilter) ([]entity.FoodItem, error) {
	args := m.Called(ctx, filter)
	if items, ok := args.Get(0).([]entity.FoodItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) Get(ctx context.Context, id string) (*entity.FoodItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*entity.FoodItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) Create(ctx context.Context, input *usecase.FoodInput) (*entity.FoodItem, error) {
	args := m.Called(ctx, input)
	if item, ok := args.Get(0).(*entity.FoodItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) Update(ctx context.Context, id string, input *usecase.FoodInput) (*entity.FoodItem, error) {
	args := m.Called(ctx, id, input)
	if item, ok := args.Get(0).(*entity.FoodItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderUsecase mocks usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

var _ usecase.OrderUsecase = (*MockOrderUsecase)(nil)

func (m *MockOrderUsecase) Create(ctx context.Context, user *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, user, input)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUsecase) ListForUser(ctx context.Context, user *entity.User) ([]entity.Order, error) {
	args := m.Called(ctx, user)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUsecase) ListAll(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUsecase) UpdateStatus(ctx context.Context, orderID string, status string) (*entity.Order, error) {
	args := m.Called(ctx, orderID, status)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPaymentUsecase mocks usecase.PaymentUsecase.
type MockPaymentUsecase struct {
	mock.Mock
}

var _ usecase.PaymentUsecase = (*MockPaymentUsecase)(nil)

func (m *MockPaymentUsecase) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.CreateIntentOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
