package handler

import (
	"net/http"
	"testing"

	"ecowave/config"
	domainerrors "ecowave/internal/domain/errors"
	mockUsecase "ecowave/internal/mocks/usecase"
	"ecowave/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Client: &config.ClientConfig{Origin: "https://app.example.com"}}

	return NewAuthHandler(authUC, cfg, testHandlerLogger()), authUC
}

func TestAuthHandler_GoogleLogin_Redirects(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.On("BeginGoogleLogin", mock.Anything).Return(&usecase.BeginLoginOutput{
		AuthorizationURL: "https://accounts.google.com/o/oauth2/v2/auth?state=s1",
		State:            "s1",
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/auth/google", "")

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=s1", rec.Header().Get("Location"))
}

func TestAuthHandler_GoogleLogin_JSONMode(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.On("BeginGoogleLogin", mock.Anything).Return(&usecase.BeginLoginOutput{
		AuthorizationURL: "https://accounts.google.com/o/oauth2/v2/auth?state=s1",
		State:            "s1",
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/auth/google?redirect=false", "")

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "oauth_url")
}

func TestAuthHandler_GoogleCallback_RedirectsWithToken(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.On("CompleteGoogleLogin", mock.Anything, &usecase.CompleteLoginInput{
		State: "s1",
		Code:  "code-abc",
	}).Return(&usecase.LoginOutput{Token: "signed+token"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/auth/google/callback?state=s1&code=code-abc", "")

	require.NoError(t, h.GoogleCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com/auth-callback?token=signed%2Btoken", rec.Header().Get("Location"))
}

func TestAuthHandler_GoogleCallback_ProviderError(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/auth/google/callback?error=access_denied", "")

	require.NoError(t, h.GoogleCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com/auth-callback?error=access_denied", rec.Header().Get("Location"))
}

func TestAuthHandler_GoogleCallback_PropagatesInvalidState(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.On("CompleteGoogleLogin", mock.Anything, mock.AnythingOfType("*usecase.CompleteLoginInput")).
		Return(nil, domainerrors.ErrOAuthStateInvalid)

	c, _ := newTestContext(t, http.MethodGet, "/auth/google/callback?state=forged&code=x", "")

	err := h.GoogleCallback(c)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}
