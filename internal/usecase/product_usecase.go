package usecase

import (
	"context"

	"ecowave/internal/domain/entity"
)

// --- Input DTOs ---

// SearchProductsInput defines the optional listing filters.
type SearchProductsInput struct {
	Category string
	Search   string
}

// CreateProductInput defines the data required to publish a new listing.
type CreateProductInput struct {
	Title          string
	Description    string
	Price          float64
	Badge          string
	Image          string
	Category       string
	Material       string
	SellerEmail    string
	SellerLocation string
	SellerPhone    string
}

// UpdateProductInput defines the mutable fields of an existing listing.
type UpdateProductInput struct {
	Title          string
	Description    string
	Price          float64
	Badge          string
	Image          string
	Category       string
	SellerLocation string
	SellerPhone    string
}

// ProductUsecase defines the interface for marketplace listing operations.
type ProductUsecase interface {
	Search(ctx context.Context, input *SearchProductsInput) ([]*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, id string, actorEmail string, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string, actorEmail string) error
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error)
}
