package usecase

import (
	"context"

	"ecowave/internal/domain/entity"
)

// ImpactOutput returns a user's accumulated eco-impact ledger.
type ImpactOutput struct {
	Impact entity.ImpactStats
}

// UserUsecase defines the interface for user-facing account operations.
type UserUsecase interface {
	// GetImpact retrieves the eco-impact ledger for the user with the given email.
	GetImpact(ctx context.Context, email string) (*ImpactOutput, error)
}
