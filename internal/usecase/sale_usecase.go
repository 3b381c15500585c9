package usecase

import (
	"context"

	"ecowave/internal/domain/entity"
)

// MarkSoldInput defines the data required to record a completed sale.
// SellerEmail is the acting identity from the verified credential; BuyerEmail
// is optional and credits the buyer's ledger when it names a known user.
type MarkSoldInput struct {
	ProductID   string
	SellerEmail string
	BuyerEmail  string
}

// MarkSoldOutput returns the listing after the sold transition.
type MarkSoldOutput struct {
	Product       *entity.Product
	BuyerCredited bool
}

// SaleUsecase defines the interface for the sale transaction engine.
type SaleUsecase interface {
	// MarkSold atomically transitions a listing to sold and credits the
	// eco-impact ledgers of the seller and, when known, the buyer. Only the
	// listing's owner may record the sale, and a listing sells at most once.
	MarkSold(ctx context.Context, input *MarkSoldInput) (*MarkSoldOutput, error)
}
