package repository

import (
	"context"

	"ecowave/internal/domain/entity"
)

// InquiryRepository defines the operations for persisting buyer inquiries.
type InquiryRepository interface {
	// Create persists a new inquiry record.
	Create(ctx context.Context, inquiry *entity.Inquiry) error
}
