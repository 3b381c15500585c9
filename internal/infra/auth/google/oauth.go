// Package google implements the federated login provider integration against
// Google's OAuth 2.0 endpoints.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"ecowave/config"
	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	defaultScopes  = "openid email profile"
	stateLifetime  = 10 * time.Minute
	requestTimeout = 15 * time.Second
)

// OAuthService handles Google OAuth infrastructure operations.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	authURL     string
	tokenURL    string
	userInfoURL string
	httpClient  *http.Client

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service.
func NewOAuthService(cfg *config.Config) (service.OAuthService, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" || cfg.GoogleOAuth.ClientSecret == "" {
		return nil, errors.New("google oauth client id and secret must be provided")
	}

	scopes := cfg.GoogleOAuth.Scopes
	if scopes == "" {
		scopes = defaultScopes
	}

	return &OAuthService{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		scopes:       scopes,
		authURL:      googleOAuthURL,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
		stateStore:   make(map[string]time.Time),
	}, nil
}

// GenerateState generates a cryptographically secure random state string.
func (s *OAuthService) GenerateState() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(errors.Wrap(err, "failed to read random state bytes"))
	}

	return hex.EncodeToString(bytes)
}

// BuildAuthorizationURL constructs the Google OAuth authorization URL with
// state parameter for CSRF protection and registers the state for later
// validation.
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return s.authURL + "?" + params.Encode()
}

// ValidateState consumes the state parameter to prevent CSRF and replay.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	// A state is single-use whether or not it has expired.
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// storeState stores a state parameter with expiration time.
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateLifetime)

	// Clean up expired states
	now := time.Now()
	for stored, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, stored)
		}
	}
}

// GetProvider returns the OAuth provider type.
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// ExchangeCodeForToken exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// GetUserInfo retrieves user information using an access token.
func (s *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		GivenName     string `json:"given_name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		GivenName:     googleUser.GivenName,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
	}, nil
}
