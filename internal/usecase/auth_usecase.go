// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ecowave/internal/domain/entity"
)

// --- Input DTOs ---

// CompleteLoginInput carries the provider callback parameters back into the
// login flow.
type CompleteLoginInput struct {
	State string
	Code  string
}

// --- Output DTOs ---

// BeginLoginOutput returns the provider redirect for a freshly started login.
type BeginLoginOutput struct {
	AuthorizationURL string
	State            string
}

// LoginOutput returns the issued credential after a completed login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for the federated login flow and for
// resolving bearer credentials back to local identities.
type AuthUsecase interface {
	// BeginGoogleLogin starts the authorization-code flow: it mints a CSRF
	// state and builds the provider redirect URL.
	BeginGoogleLogin(ctx context.Context) (*BeginLoginOutput, error)

	// CompleteGoogleLogin finishes the flow from the provider callback:
	// validates state, exchanges the code, reconciles the asserted identity
	// into a local user and issues a signed token for it.
	CompleteGoogleLogin(ctx context.Context, input *CompleteLoginInput) (*LoginOutput, error)

	// VerifyCredential resolves a raw bearer token to the local user it was
	// issued for. A valid token whose subject no longer exists is rejected,
	// never repaired by creating an identity on the fly.
	VerifyCredential(ctx context.Context, tokenString string) (*entity.User, error)
}
