package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecowave/internal/delivery/context"
	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search lists products matching the optional category and text filters.
func (srv *productService) Search(ctx context.Context, input *usecase.SearchProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, repository.ProductFilter{
		Category: input.Category,
		Search:   input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// Get retrieves a single listing by its identifier.
func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Create publishes a new listing. The eco-impact figures are derived from the
// category at creation time and stay fixed for the listing's lifetime.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		Badge:          input.Badge,
		Image:          input.Image,
		Category:       input.Category,
		Material:       input.Material,
		EcoImpact:      entity.ImpactForCategory(input.Category),
		SellerEmail:    input.SellerEmail,
		SellerLocation: input.SellerLocation,
		SellerPhone:    input.SellerPhone,
		Status:         entity.ProductStatusActive,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("sellerEmail", input.SellerEmail), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Created product", slog.String("productID", product.ID), slog.String("sellerEmail", product.SellerEmail))

	return product, nil
}

// Update modifies a listing. Only the listing's owner may change it, and the
// derived eco-impact follows the category when it changes.
func (srv *productService) Update(ctx context.Context, id string, actorEmail string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.loadOwnedProduct(ctx, id, actorEmail)
	if err != nil {
		return nil, err
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Badge = input.Badge
	product.Image = input.Image
	product.SellerLocation = input.SellerLocation
	product.SellerPhone = input.SellerPhone
	if input.Category != "" && input.Category != product.Category {
		product.Category = input.Category
		product.EcoImpact = entity.ImpactForCategory(input.Category)
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a listing. Only the listing's owner may remove it.
func (srv *productService) Delete(ctx context.Context, id string, actorEmail string) error {
	if _, err := srv.loadOwnedProduct(ctx, id, actorEmail); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Deleted product", slog.String("productID", id), slog.String("sellerEmail", actorEmail))

	return nil
}

// ListBySeller retrieves all listings published under a seller email.
func (srv *productService) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// loadOwnedProduct fetches a listing and verifies the actor owns it.
func (srv *productService) loadOwnedProduct(ctx context.Context, id string, actorEmail string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if product.SellerEmail != actorEmail {
		srv.log(ctx).Warn("Rejected listing change by non-owner",
			slog.String("productID", id),
			slog.String("actor", actorEmail))

		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}
