// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecowave/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Upsert finds-or-creates a user keyed by email as one atomic store
	// operation: two concurrent logins for a new email must converge on a
	// single record. Profile fields (name, provider) are refreshed in place;
	// the impact ledger and created_at are never overwritten. The post-upsert
	// canonical record is returned.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)

	// IncrementImpact atomically adds an impact snapshot to the ledger of the
	// user with the given email. The seller side bumps items_recycled, the
	// buyer side items_purchased. It reports whether a matching user existed;
	// a miss is not an error so that crediting an off-platform buyer stays a
	// no-op rather than a failure.
	IncrementImpact(ctx context.Context, email string, impact entity.EcoImpact, asSeller bool) (bool, error)
}
