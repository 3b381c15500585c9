package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecowave/internal/delivery/context"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetImpact retrieves the accumulated eco-impact ledger for a user.
func (srv *userService) GetImpact(ctx context.Context, email string) (*usecase.ImpactOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Impact requested for unknown user", slog.String("email", email))

			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load user impact")
	}

	return &usecase.ImpactOutput{Impact: user.Impact}, nil
}
