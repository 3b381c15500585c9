// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"ecowave/config"
	"ecowave/internal/delivery/http/response"
	"ecowave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the federated login endpoints.
type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	clientOrigin string
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	clientOrigin := ""
	if cfg.Client != nil {
		clientOrigin = cfg.Client.Origin
	}

	return &AuthHandler{
		authUsecase:  authUsecase,
		clientOrigin: clientOrigin,
		logger:       logger,
	}
}

// GoogleLogin initiates the Google Sign-In flow. Browsers follow the redirect
// directly; API clients can ask for the URL as JSON with ?redirect=false.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	output, err := h.authUsecase.BeginGoogleLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{
			"oauth_url": output.AuthorizationURL,
		}, "Google OAuth URL generated successfully")
	}

	return c.Redirect(http.StatusTemporaryRedirect, output.AuthorizationURL)
}

// GoogleCallback completes the login from the provider redirect and forwards
// the browser to the client app with the issued token in the query string.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.logger.Warn("Provider returned an error on callback", slog.String("error", providerErr))

		return c.Redirect(http.StatusFound, h.clientCallbackURL("error", providerErr))
	}

	output, err := h.authUsecase.CompleteGoogleLogin(c.Request().Context(), &usecase.CompleteLoginInput{
		State: c.QueryParam("state"),
		Code:  c.QueryParam("code"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, h.clientCallbackURL("token", output.Token))
}

func (h *AuthHandler) clientCallbackURL(key, value string) string {
	return h.clientOrigin + "/auth-callback?" + key + "=" + url.QueryEscape(value)
}
