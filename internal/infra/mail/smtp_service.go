// Package mail implements the outbound notification boundary over SMTP.
package mail

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"ecowave/config"
	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/service"

	"gopkg.in/gomail.v2"
)

// dialer is the subset of gomail's dialer used here, extracted so tests can
// substitute the transport.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpService notifies sellers about buyer inquiries. Delivery is best-effort
// only: every failure path degrades to delivered=false and the enclosing
// operation proceeds.
type smtpService struct {
	from   string
	dialer dialer
	logger *slog.Logger
}

// NewSMTPService is the constructor for smtpService. Missing SMTP credentials
// are not an error; they produce a service that records every send as
// undelivered.
func NewSMTPService(cfg *config.Config, logger *slog.Logger) service.MailService {
	svc := &smtpService{logger: logger}

	if cfg.SMTP == nil || cfg.SMTP.Email == "" || cfg.SMTP.Password == "" {
		return svc
	}

	svc.from = cfg.SMTP.Email
	svc.dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password)

	return svc
}

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #10b981;">New inquiry on EcoWave</h2>
      <p>Someone is interested in your listing: <strong>{{.ProductTitle}}</strong></p>
      <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px;">
        <p><strong>Name:</strong> {{.BuyerName}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{.BuyerEmail}}">{{.BuyerEmail}}</a></p>
        <p><strong>Message:</strong></p>
        <p>{{.BuyerMessage}}</p>
      </div>
      <p>Reply directly to <a href="mailto:{{.BuyerEmail}}">{{.BuyerEmail}}</a> to connect with this buyer.</p>
      <p style="font-size: 12px; color: #6b7280;">This is an automated message from EcoWave Marketplace.</p>
    </div>
  </body>
</html>
`))

// SendInquiryNotice emails the seller about a buyer inquiry.
func (s *smtpService) SendInquiryNotice(ctx context.Context, inquiry *entity.Inquiry) bool {
	if s.dialer == nil {
		s.logger.WarnContext(ctx, "SMTP credentials not configured, skipping inquiry email",
			slog.String("inquiryID", inquiry.ID))

		return false
	}

	var body bytes.Buffer
	if err := inquiryTemplate.Execute(&body, inquiry); err != nil {
		s.logger.ErrorContext(ctx, "Failed to render inquiry email",
			slog.String("inquiryID", inquiry.ID), slog.Any("error", err))

		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", inquiry.SellerEmail)
	msg.SetHeader("Subject", "EcoWave: Inquiry about '"+inquiry.ProductTitle+"'")
	msg.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send inquiry email",
			slog.String("inquiryID", inquiry.ID),
			slog.String("sellerEmail", inquiry.SellerEmail),
			slog.Any("error", err))

		return false
	}

	s.logger.InfoContext(ctx, "Inquiry email sent", slog.String("sellerEmail", inquiry.SellerEmail))

	return true
}
