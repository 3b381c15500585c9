package service

import (
	"context"

	"ecowave/internal/domain/entity"
)

// OAuthUser represents user information asserted by an OAuth provider.
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address; may be empty if the provider withheld it
	Name          string              // User's display name
	GivenName     string              // First name, used as a display-name fallback
	Provider      entity.ProviderType // The OAuth provider that vouched for this identity
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthService defines the interface for the server-side authorization-code
// flow against a federated identity provider.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider redirect for the given
	// CSRF state parameter and registers the state for later validation.
	BuildAuthorizationURL(state string) string

	// GenerateState returns a fresh cryptographically random state parameter.
	GenerateState() string

	// ValidateState consumes a state parameter, reporting whether it was
	// issued by us and has not expired or been used before.
	ValidateState(state string) bool

	// ExchangeCodeForToken exchanges an authorization code for the provider's
	// access token. Network failures surface as errors; the login flow maps
	// them to an upstream-unavailable response.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo retrieves the provider's identity assertion for an access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type.
	GetProvider() entity.ProviderType
}
