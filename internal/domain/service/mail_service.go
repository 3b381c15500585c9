package service

import (
	"context"

	"ecowave/internal/domain/entity"
)

// MailService defines the boundary for outbound notification email. Delivery
// is strictly best-effort: implementations report success as a boolean and
// never return an error, so a broken transport cannot fail the operation that
// triggered the notification.
type MailService interface {
	// SendInquiryNotice emails the seller about a buyer inquiry and reports
	// whether the message was handed to the transport.
	SendInquiryNotice(ctx context.Context, inquiry *entity.Inquiry) (delivered bool)
}
