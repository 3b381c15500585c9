package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecowave/internal/delivery/context"
	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/domain/service"
	"ecowave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inquiryService implements the InquiryUsecase interface.
type inquiryService struct {
	productRepo repository.ProductRepository
	inquiryRepo repository.InquiryRepository
	mailService service.MailService
	logger      *slog.Logger
}

// InquiryServiceParams holds dependencies for inquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	InquiryRepo repository.InquiryRepository
	MailService service.MailService
	Logger      *slog.Logger
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	return &inquiryService{
		productRepo: params.ProductRepo,
		inquiryRepo: params.InquiryRepo,
		mailService: params.MailService,
		logger:      params.Logger,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitInquiry records a buyer inquiry against a listing and notifies the
// seller. The record always persists; the email is best-effort and its
// outcome is reported back to the caller rather than raised as a failure.
func (srv *inquiryService) SubmitInquiry(ctx context.Context, input *usecase.SubmitInquiryInput) (*usecase.SubmitInquiryOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for inquiry")
	}

	if product.SellerEmail == "" {
		return nil, domainerrors.ErrSellerContactMissing
	}

	inquiry := &entity.Inquiry{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		ProductTitle: product.Title,
		BuyerName:    input.BuyerName,
		BuyerEmail:   input.BuyerEmail,
		BuyerMessage: input.Message,
		SellerEmail:  product.SellerEmail,
		Status:       "sent",
	}

	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		srv.log(ctx).Error("Failed to record inquiry", slog.String("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record inquiry")
	}

	emailSent := srv.mailService.SendInquiryNotice(ctx, inquiry)
	if !emailSent {
		srv.log(ctx).Warn("Inquiry recorded but seller notification was not delivered",
			slog.String("inquiryID", inquiry.ID),
			slog.String("sellerEmail", inquiry.SellerEmail))
	}

	return &usecase.SubmitInquiryOutput{Inquiry: inquiry, EmailSent: emailSent}, nil
}
