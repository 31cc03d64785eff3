// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"burgerqueen/config"
	deliverycontext "burgerqueen/internal/delivery/context"
	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/domain/service"
	"burgerqueen/internal/errors"
	"burgerqueen/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	registerTTL  time.Duration
	loginTTL     time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		registerTTL:  params.Config.Session.RegisterTTL,
		loginTTL:     params.Config.Session.LoginTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new non-admin account and issues a registration-path
// session token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateUser
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can win the race between the lookup
		// above and this insert; the unique index reports it here.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrDuplicateUser
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Registered new user", slog.String("userID", user.ID))

	return srv.issueSession(user, srv.registerTTL)
}

// Login verifies credentials and issues a login-path session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same answer as a wrong password; do not leak which emails exist.
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID))

	return srv.issueSession(user, srv.loginTTL)
}

// ValidateSession resolves a session token to its user, re-reading the user
// so that deleted accounts are rejected.
func (srv *authService) ValidateSession(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}
		return nil, errors.Wrap(err, "failed to resolve session user")
	}

	return user, nil
}

func (srv *authService) issueSession(user *entity.User, ttl time.Duration) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Generate(user.ID, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{
		User:  user.Public(),
		Token: token,
		TTL:   ttl,
	}, nil
}
