package repository

import (
	"context"
	"errors"

	"ecowave/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing query. Zero values mean "no filter".
type ProductFilter struct {
	Category string // Exact category match; "all" and "" both mean every category.
	Search   string // Case-insensitive substring match against title and description.
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its opaque identifier.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Search retrieves products matching the filter, newest first.
	Search(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// FindBySeller retrieves all products listed under a seller email, newest first.
	FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error)

	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product listing.
	Delete(ctx context.Context, id string) error

	// MarkSold transitions a product from active to sold as a single
	// conditional update, recording the buyer email if supplied. It reports
	// false when the product was no longer active, which is how a concurrent
	// second sale attempt is detected without double-applying effects.
	MarkSold(ctx context.Context, id string, buyerEmail string) (bool, error)
}
