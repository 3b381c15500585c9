package postgres

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, activeProduct("prod-1", "seller@example.com"))
	})
	require.NoError(t, err)

	_, err = NewProductRepository(db).FindByID(ctx, "prod-1")
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.ProductRepo().Create(ctx, activeProduct("prod-1", "seller@example.com")); createErr != nil {
			return createErr
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewProductRepository(db).FindByID(ctx, "prod-1")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestTransactionManager_SellCreditsBothLedgers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	userRepo := NewUserRepository(db)
	_, err := userRepo.Upsert(ctx, &entity.User{Email: "seller@example.com", Name: "Seller", Provider: entity.ProviderTypeGoogle})
	require.NoError(t, err)
	_, err = userRepo.Upsert(ctx, &entity.User{Email: "buyer@example.com", Name: "Buyer", Provider: entity.ProviderTypeGoogle})
	require.NoError(t, err)

	product := activeProduct("prod-1", "seller@example.com")
	require.NoError(t, NewProductRepository(db).Create(ctx, product))

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sold, markErr := repoFactory.ProductRepo().MarkSold(ctx, product.ID, "buyer@example.com")
		if markErr != nil {
			return markErr
		}
		require.True(t, sold)

		if _, creditErr := repoFactory.UserRepo().IncrementImpact(ctx, "seller@example.com", product.EcoImpact, true); creditErr != nil {
			return creditErr
		}
		_, creditErr := repoFactory.UserRepo().IncrementImpact(ctx, "buyer@example.com", product.EcoImpact, false)

		return creditErr
	})
	require.NoError(t, err)

	seller, err := userRepo.FindByEmail(ctx, "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, seller.Impact.ItemsRecycled)
	assert.InDelta(t, product.EcoImpact.CO2, seller.Impact.CO2Saved, 0.001)

	buyer, err := userRepo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, buyer.Impact.ItemsPurchased)
	assert.InDelta(t, product.EcoImpact.Water, buyer.Impact.WaterSaved, 0.001)
}
