// Package entity contains the core business objects of the project.
package entity

import "time"

// Inquiry records a buyer-to-seller contact event for a listing. The record
// is persisted independently of whether the notification email reaches the
// seller.
type Inquiry struct {
	ID           string    `json:"id"`            // Opaque unique token assigned at creation.
	ProductID    string    `json:"product_id"`    // The listing the buyer is asking about.
	ProductTitle string    `json:"product_title"` // Title snapshot taken when the inquiry was made.
	BuyerName    string    `json:"buyer_name"`    // Name the buyer wants shown to the seller.
	BuyerEmail   string    `json:"buyer_email"`   // Reply-to address forwarded to the seller.
	BuyerMessage string    `json:"buyer_message"` // Free-form message from the buyer.
	SellerEmail  string    `json:"seller_email"`  // Where the notification is sent.
	Status       string    `json:"status"`        // Delivery bookkeeping, currently always "sent".
	CreatedAt    time.Time `json:"created_at"`
}
