// Package entity contains the core business objects of the project.
package entity

import "time"

// ProductStatus is the lifecycle state of a listing. "sold" is terminal; a
// product never transitions back to "active".
type ProductStatus string

const (
	// ProductStatusActive indicates the listing is visible and sellable.
	ProductStatusActive ProductStatus = "active"
	// ProductStatusSold indicates the sale completed and the ledgers were credited.
	ProductStatusSold ProductStatus = "sold"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// Product is a second-hand listing. SellerEmail is the only authorization
// anchor for mutating sale state: whoever authenticates with that email owns
// the listing.
type Product struct {
	ID             string        `json:"id"`              // Opaque unique token assigned at creation.
	Title          string        `json:"title"`           // Listing title.
	Description    string        `json:"description"`     // Free-form listing description.
	Price          float64       `json:"price"`           // Asking price.
	Badge          string        `json:"badge"`           // Display badge, e.g. "Like New".
	Image          string        `json:"image"`           // Image URL for the listing.
	Category       string        `json:"category"`        // Category key used to derive the impact snapshot.
	Material       string        `json:"material"`        // Optional material hint supplied by the seller.
	EcoImpact      EcoImpact     `json:"eco_impact"`      // Impact snapshot fixed at creation time, never recomputed.
	SellerEmail    string        `json:"seller_email"`    // Ownership anchor; must match the acting identity to sell.
	SellerLocation string        `json:"seller_location"` // Optional seller location shown to buyers.
	SellerPhone    string        `json:"seller_phone"`    // Optional seller phone shown to buyers.
	Status         ProductStatus `json:"status"`          // active or sold.
	BuyerEmail     string        `json:"buyer_email"`     // Recorded when the sale completes, if the seller supplied one.
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// IsSold reports whether the listing has reached its terminal state.
func (p *Product) IsSold() bool {
	return p.Status == ProductStatusSold
}
