// Command seedadmin creates the bootstrap administrator account, or promotes
// the configured account to administrator if it already exists.
package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"burgerqueen/config"
	"burgerqueen/internal/domain/entity"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/domain/service"
	"burgerqueen/internal/errors"
	"burgerqueen/internal/infra/auth"
	logs "burgerqueen/internal/infra/log"
	"burgerqueen/internal/infra/persistence/mongo"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mongo.New,
			mongo.NewUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Invoke(runSeed),
	).Run()
}

func runSeed(ctx context.Context, params seedParams) {
	code := 0
	if err := seedAdmin(ctx, params); err != nil {
		params.Logger.Error("Failed to seed admin user", slog.Any("error", err))
		code = 1
	}

	if err := params.Shutdown(fx.ExitCode(code)); err != nil {
		params.Logger.Error("Failed to shutdown", slog.Any("error", err))
		os.Exit(1)
	}
}

func seedAdmin(ctx context.Context, params seedParams) error {
	seed := params.Config.AdminSeed
	if seed == nil || seed.Email == "" || seed.Password == "" {
		return errors.New("adminSeed.email and adminSeed.password must be configured")
	}

	user, err := params.UserRepo.FindByEmail(ctx, seed.Email)
	switch {
	case err == nil:
		if user.IsAdmin {
			params.Logger.Info("Admin user already exists", slog.String("email", seed.Email))
			return nil
		}

		user.IsAdmin = true
		if err := params.UserRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to promote user")
		}
		params.Logger.Info("Existing user promoted to admin", slog.String("email", seed.Email))

		return nil

	case errors.Is(err, repository.ErrUserNotFound):
		hash, err := params.Hasher.Hash(seed.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash admin password")
		}

		admin := &entity.User{
			Email:        seed.Email,
			PasswordHash: hash,
			IsAdmin:      true,
		}
		if err := params.UserRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to create admin user")
		}
		params.Logger.Info("Admin user created", slog.String("email", seed.Email))

		return nil

	default:
		return errors.Wrap(err, "failed to look up admin user")
	}
}
