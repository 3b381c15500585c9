package usecase

import (
	"context"

	"ecowave/internal/domain/entity"
)

// SubmitInquiryInput defines the data a buyer submits about a listing.
type SubmitInquiryInput struct {
	ProductID  string
	BuyerName  string
	BuyerEmail string
	Message    string
}

// SubmitInquiryOutput returns the recorded inquiry and whether the seller
// notification was handed off for delivery.
type SubmitInquiryOutput struct {
	Inquiry   *entity.Inquiry
	EmailSent bool
}

// InquiryUsecase defines the interface for buyer-to-seller inquiries.
type InquiryUsecase interface {
	// SubmitInquiry records the inquiry and notifies the seller by email on
	// a best-effort basis: a failed notification never fails the submission.
	SubmitInquiry(ctx context.Context, input *SubmitInquiryInput) (*SubmitInquiryOutput, error)
}
