package service

import (
	"github.com/golang-jwt/jwt/v5"

	"ecowave/internal/domain/entity"
)

// Claims defines the custom claims carried by an issued token. The subject is
// the user's public identifier and email is what protected operations use to
// resolve the acting identity.
type Claims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed
// identity assertions. This abstracts the token format from the use cases.
type TokenService interface {
	// Issue mints a signed, time-bounded token encoding the identity claims
	// of the given user. Deterministic for a fixed user, clock and lifetime.
	Issue(user *entity.User) (string, error)

	// Verify checks the signature and time bounds of a raw token and returns
	// its claims. Any decode, signature or expiry failure is an error.
	Verify(tokenString string) (*Claims, error)
}
