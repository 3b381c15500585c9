// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecowave/internal/delivery/context"
	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/domain/service"
	"ecowave/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	oauthService service.OAuthService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	OAuthService service.OAuthService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginGoogleLogin starts the authorization-code flow against the provider.
func (srv *authService) BeginGoogleLogin(ctx context.Context) (*usecase.BeginLoginOutput, error) {
	state := srv.oauthService.GenerateState()
	authorizationURL := srv.oauthService.BuildAuthorizationURL(state)

	srv.log(ctx).Debug("Started federated login", slog.Any("provider", srv.oauthService.GetProvider()))

	return &usecase.BeginLoginOutput{
		AuthorizationURL: authorizationURL,
		State:            state,
	}, nil
}

// CompleteGoogleLogin finishes the flow from the provider callback. The state
// check runs first so a forged callback never reaches the provider exchange.
func (srv *authService) CompleteGoogleLogin(ctx context.Context, input *usecase.CompleteLoginInput) (*usecase.LoginOutput, error) {
	if !srv.oauthService.ValidateState(input.State) {
		srv.log(ctx).Warn("Rejected login callback with unknown state")

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	accessToken, err := srv.oauthService.ExchangeCodeForToken(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to exchange authorization code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "code exchange failed")
	}

	oauthUser, err := srv.oauthService.GetUserInfo(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch identity from provider", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "userinfo fetch failed")
	}

	if oauthUser.Email == "" {
		srv.log(ctx).Warn("Provider asserted an identity without an email")

		return nil, domainerrors.ErrIdentityIncomplete
	}

	user, err := srv.userRepo.Upsert(ctx, &entity.User{
		Email:    oauthUser.Email,
		Name:     displayNameFor(oauthUser),
		Provider: srv.oauthService.GetProvider(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to reconcile federated identity", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to reconcile federated identity")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Info("Completed federated login", slog.Any("userID", user.ID), slog.String("email", user.Email))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// VerifyCredential resolves a bearer token to the local user it names. A
// token whose subject no longer exists is rejected rather than repaired;
// identities are only ever created through the login flow.
func (srv *authService) VerifyCredential(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(tokenString)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredential, "token verification failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Valid token names an unknown subject", slog.String("email", claims.Email))

			return nil, domainerrors.ErrUnknownSubject
		}

		return nil, errors.Wrap(err, "failed to resolve credential subject")
	}

	return user, nil
}

// displayNameFor picks the best available display name from a provider
// assertion: full name, then given name, then the email's local part.
func displayNameFor(oauthUser *service.OAuthUser) string {
	if oauthUser.Name != "" {
		return oauthUser.Name
	}
	if oauthUser.GivenName != "" {
		return oauthUser.GivenName
	}

	local, _, _ := strings.Cut(oauthUser.Email, "@")

	return local
}
