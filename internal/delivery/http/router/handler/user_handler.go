package handler

import (
	"log/slog"
	"net/http"

	"ecowave/internal/delivery/http/middleware"
	"ecowave/internal/delivery/http/response"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUsecase usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// GetProfile returns the identity resolved from the bearer credential.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrMissingCredential
	}

	return response.Success(c, http.StatusOK, user, "")
}

// GetImpact returns the authenticated user's eco-impact ledger.
func (h *UserHandler) GetImpact(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrMissingCredential
	}

	output, err := h.userUsecase.GetImpact(c.Request().Context(), user.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Impact, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
