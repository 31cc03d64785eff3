// Package repository provides testify mocks for the domain repository
// interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	args := m.Called(ctx, ids)
	if users, ok := args.Get(0).(map[string]*entity.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockFoodRepository mocks repository.FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

var _ repository.FoodRepository = (*MockFoodRepository)(nil)

func (m *MockFoodRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id string) (*entity.FoodItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*entity.FoodItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFoodRepository) List(ctx context.Context, filter repository.FoodFilter) ([]entity.FoodItem, error) {
	args := m.Called(ctx, filter)
	if items, ok := args.Get(0).([]entity.FoodItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFoodRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error) {
	args := m.Called(ctx, intentID)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.FulfillmentStatus) (*entity.Order, error) {
	args := m.Called(ctx, id, from, to)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}
