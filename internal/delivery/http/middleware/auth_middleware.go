package middleware

import (
	"strings"

	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser is where the authenticated user is stored on echo.Context.
	ContextKeyUser = "user"
)

// AuthMiddleware gates protected routes behind a verified bearer credential.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate extracts the Bearer token, resolves it to a local user and
// stores the user on the request context. A missing header, a bad token and
// a token whose subject no longer exists are all rejected before the handler
// runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingCredential
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrMissingCredential.WithDetails("expected a Bearer token")
		}

		user, err := m.authUsecase.VerifyCredential(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user placed on the context by
// Authenticate, or nil on unauthenticated routes.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(ContextKeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
