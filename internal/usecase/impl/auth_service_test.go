package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"burgerqueen/config"
	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/domain/service"
	"burgerqueen/internal/errors"
	mockRepo "burgerqueen/internal/mocks/repository"
	mockSvc "burgerqueen/internal/mocks/service"
	"burgerqueen/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Session.RegisterTTL = time.Hour
	cfg.Session.LoginTTL = 7 * 24 * time.Hour

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret").Return("$2a$10$hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = "64f0c7e2a1b2c3d4e5f60718"
		}).
		Return(nil)
	fx.tokenService.On("Generate", "64f0c7e2a1b2c3d4e5f60718", time.Hour).Return("signed-token", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", out.User.Email)
	assert.False(t, out.User.IsAdmin)
	assert.Equal(t, "signed-token", out.Token)
	// Registration-path tokens are the short-lived ones.
	assert.Equal(t, time.Hour, out.TTL)
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.User{ID: "64f0c7e2a1b2c3d4e5f60718", Email: "a@x.com"}
	fx.userRepo.On("FindByEmail", ctx, "a@x.com").Return(existing, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUser))
}

func TestAuthService_Register_DuplicateRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret").Return("$2a$10$hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUser))
}

func TestAuthService_Register_NeverStoresPlaintext(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret").Return("$2a$10$hashed", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.PasswordHash != "secret" && user.PasswordHash != ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = "64f0c7e2a1b2c3d4e5f60718"
	}).Return(nil)
	fx.tokenService.On("Generate", mock.Anything, mock.Anything).Return("signed-token", nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: "64f0c7e2a1b2c3d4e5f60718", Email: "a@x.com", PasswordHash: "$2a$10$hashed"}
	fx.userRepo.On("FindByEmail", ctx, "a@x.com").Return(user, nil)
	fx.hasher.On("Check", "secret", "$2a$10$hashed").Return(true)
	fx.tokenService.On("Generate", user.ID, 7*24*time.Hour).Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	// Login-path tokens outlive registration-path ones.
	assert.Equal(t, 7*24*time.Hour, out.TTL)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "secret"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: "64f0c7e2a1b2c3d4e5f60718", Email: "a@x.com", PasswordHash: "$2a$10$hashed"}
	fx.userRepo.On("FindByEmail", ctx, "a@x.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$hashed").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	assert.Nil(t, out)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ValidateSession_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: "64f0c7e2a1b2c3d4e5f60718", Email: "a@x.com"}
	fx.tokenService.On("Validate", "signed-token").
		Return(&service.SessionClaims{UserID: user.ID}, nil)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := fx.service.ValidateSession(ctx, "signed-token")

	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

func TestAuthService_ValidateSession_MissingToken(t *testing.T) {
	fx := createTestAuthService(t)

	got, err := fx.service.ValidateSession(context.Background(), "")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_ValidateSession_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.On("Validate", "garbage").Return(nil, errors.New("parse failed"))

	got, err := fx.service.ValidateSession(context.Background(), "garbage")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_ValidateSession_UserGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Validate", "signed-token").
		Return(&service.SessionClaims{UserID: "64f0c7e2a1b2c3d4e5f60718"}, nil)
	fx.userRepo.On("FindByID", ctx, "64f0c7e2a1b2c3d4e5f60718").
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.ValidateSession(ctx, "signed-token")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
