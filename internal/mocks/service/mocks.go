// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"burgerqueen/internal/domain/service"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

var _ service.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Generate(userID string, ttl time.Duration) (string, error) {
	args := m.Called(userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (*service.SessionClaims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.SessionClaims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPaymentGateway mocks service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

var _ service.PaymentGateway = (*MockPaymentGateway)(nil)

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount int64) (*service.PaymentIntent, error) {
	args := m.Called(ctx, amount)
	if intent, ok := args.Get(0).(*service.PaymentIntent); ok {
		return intent, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentGateway) RetrieveIntent(ctx context.Context, intentID string) (*service.ConfirmedPayment, error) {
	args := m.Called(ctx, intentID)
	if confirmed, ok := args.Get(0).(*service.ConfirmedPayment); ok {
		return confirmed, args.Error(1)
	}
	return nil, args.Error(1)
}
