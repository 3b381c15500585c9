package impl

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	mockRepo "ecowave/internal/mocks/repository"
	"ecowave/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saleServiceFixtures holds all test dependencies for sale service tests.
type saleServiceFixtures struct {
	service     usecase.SaleUsecase
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Users:    userRepo,
			Products: productRepo,
		},
	}

	svc := NewSaleService(SaleServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})

	return saleServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func activeSaleProduct() *entity.Product {
	return &entity.Product{
		ID:          "prod-1",
		Title:       "Refurbished Laptop",
		Category:    "electronics",
		EcoImpact:   entity.ImpactForCategory("electronics"),
		SellerEmail: "seller@example.com",
		Status:      entity.ProductStatusActive,
	}
}

func TestSaleService_MarkSold_CreditsSellerAndBuyer(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := activeSaleProduct()
	soldProduct := activeSaleProduct()
	soldProduct.Status = entity.ProductStatusSold
	soldProduct.BuyerEmail = "buyer@example.com"

	fx.productRepo.On("FindByID", ctx, "prod-1").Return(product, nil).Once()
	fx.productRepo.On("MarkSold", ctx, "prod-1", "buyer@example.com").Return(true, nil)
	fx.userRepo.On("IncrementImpact", ctx, "seller@example.com", product.EcoImpact, true).Return(true, nil)
	fx.userRepo.On("IncrementImpact", ctx, "buyer@example.com", product.EcoImpact, false).Return(true, nil)
	fx.productRepo.On("FindByID", ctx, "prod-1").Return(soldProduct, nil).Once()

	out, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{
		ProductID:   "prod-1",
		SellerEmail: "seller@example.com",
		BuyerEmail:  "buyer@example.com",
	})
	require.NoError(t, err)
	assert.True(t, out.BuyerCredited)
	assert.Equal(t, entity.ProductStatusSold, out.Product.Status)
}

func TestSaleService_MarkSold_WithoutBuyerSkipsBuyerCredit(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := activeSaleProduct()
	soldProduct := activeSaleProduct()
	soldProduct.Status = entity.ProductStatusSold

	fx.productRepo.On("FindByID", ctx, "prod-1").Return(product, nil).Once()
	fx.productRepo.On("MarkSold", ctx, "prod-1", "").Return(true, nil)
	fx.userRepo.On("IncrementImpact", ctx, "seller@example.com", product.EcoImpact, true).Return(true, nil)
	fx.productRepo.On("FindByID", ctx, "prod-1").Return(soldProduct, nil).Once()

	out, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{
		ProductID:   "prod-1",
		SellerEmail: "seller@example.com",
	})
	require.NoError(t, err)
	assert.False(t, out.BuyerCredited)
}

func TestSaleService_MarkSold_UnknownBuyerStillCompletes(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := activeSaleProduct()
	soldProduct := activeSaleProduct()
	soldProduct.Status = entity.ProductStatusSold

	fx.productRepo.On("FindByID", ctx, "prod-1").Return(product, nil).Once()
	fx.productRepo.On("MarkSold", ctx, "prod-1", "stranger@example.com").Return(true, nil)
	fx.userRepo.On("IncrementImpact", ctx, "seller@example.com", product.EcoImpact, true).Return(true, nil)
	fx.userRepo.On("IncrementImpact", ctx, "stranger@example.com", product.EcoImpact, false).Return(false, nil)
	fx.productRepo.On("FindByID", ctx, "prod-1").Return(soldProduct, nil).Once()

	out, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{
		ProductID:   "prod-1",
		SellerEmail: "seller@example.com",
		BuyerEmail:  "stranger@example.com",
	})
	require.NoError(t, err)
	assert.False(t, out.BuyerCredited)
}

func TestSaleService_MarkSold_ProductNotFound(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{ProductID: "missing", SellerEmail: "seller@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestSaleService_MarkSold_NonOwnerForbidden(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "prod-1").Return(activeSaleProduct(), nil)

	_, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{ProductID: "prod-1", SellerEmail: "intruder@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSaleService_MarkSold_AlreadySold(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := activeSaleProduct()
	product.Status = entity.ProductStatusSold

	fx.productRepo.On("FindByID", ctx, "prod-1").Return(product, nil)

	_, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{ProductID: "prod-1", SellerEmail: "seller@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySold)
}

func TestSaleService_MarkSold_LosesRace(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	// The read sees an active listing, but another request flips it to sold
	// before our conditional update runs.
	fx.productRepo.On("FindByID", ctx, "prod-1").Return(activeSaleProduct(), nil)
	fx.productRepo.On("MarkSold", ctx, "prod-1", "").Return(false, nil)

	_, err := fx.service.MarkSold(ctx, &usecase.MarkSoldInput{ProductID: "prod-1", SellerEmail: "seller@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySold)
}
