package postgres

import (
	"context"

	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// inquiryRepository implements the domain.InquiryRepository interface using GORM.
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create persists a new inquiry record.
func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiryM := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inquiry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.CreatedAt = inquiryM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromInquiryDomain converts a domain Inquiry entity to a GORM InquiryModel.
func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	return &model.InquiryModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		ProductTitle: data.ProductTitle,
		BuyerName:    data.BuyerName,
		BuyerEmail:   data.BuyerEmail,
		BuyerMessage: data.BuyerMessage,
		SellerEmail:  data.SellerEmail,
		Status:       data.Status,
	}
}
