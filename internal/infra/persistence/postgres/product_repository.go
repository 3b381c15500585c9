package postgres

import (
	"context"
	"strings"
	"time"

	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its opaque identifier.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Search retrieves products matching the filter, newest first.
func (repo *productRepository) Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindBySeller retrieves all products listed under a seller email, newest first.
func (repo *productRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("seller_email = ?", sellerEmail).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by seller")
	}

	return toProductDomainSlice(productModels), nil
}

// Create persists a new product listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product listing.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"title":           productM.Title,
			"description":     productM.Description,
			"price":           productM.Price,
			"badge":           productM.Badge,
			"image":           productM.Image,
			"category":        productM.Category,
			"seller_email":    productM.SellerEmail,
			"seller_location": productM.SellerLocation,
			"seller_phone":    productM.SellerPhone,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product listing.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// MarkSold transitions a product from active to sold as one conditional
// update. The status predicate makes the check-and-set atomic at the store:
// of two concurrent attempts exactly one matches a row, and the loser
// observes zero rows affected rather than double-applying the transition.
func (repo *productRepository) MarkSold(ctx context.Context, id string, buyerEmail string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND status = ?", id, entity.ProductStatusActive.String()).
		Updates(map[string]any{
			"status":      entity.ProductStatusSold.String(),
			"buyer_email": buyerEmail,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark product sold")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Badge:       data.Badge,
		Image:       data.Image,
		Category:    data.Category,
		Material:    data.Material,
		EcoImpact: entity.EcoImpact{
			CO2:   data.ImpactCO2,
			Water: data.ImpactWater,
			Waste: data.ImpactWaste,
		},
		SellerEmail:    data.SellerEmail,
		SellerLocation: data.SellerLocation,
		SellerPhone:    data.SellerPhone,
		Status:         entity.ProductStatus(data.Status),
		BuyerEmail:     data.BuyerEmail,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		Price:          data.Price,
		Badge:          data.Badge,
		Image:          data.Image,
		Category:       data.Category,
		Material:       data.Material,
		ImpactCO2:      data.EcoImpact.CO2,
		ImpactWater:    data.EcoImpact.Water,
		ImpactWaste:    data.EcoImpact.Waste,
		SellerEmail:    data.SellerEmail,
		SellerLocation: data.SellerLocation,
		SellerPhone:    data.SellerPhone,
		Status:         data.Status.String(),
		BuyerEmail:     data.BuyerEmail,
	}
}
