package postgres

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateAndFindByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	product := activeProduct("prod-1", "seller@example.com")
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindByID(ctx, "prod-1")
	require.NoError(t, err)

	assert.Equal(t, "Refurbished Laptop", found.Title)
	assert.Equal(t, entity.ProductStatusActive, found.Status)
	assert.InDelta(t, product.EcoImpact.CO2, found.EcoImpact.CO2, 0.001)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewProductRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Search(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	laptop := activeProduct("prod-1", "seller@example.com")
	require.NoError(t, repo.Create(ctx, laptop))

	jacket := activeProduct("prod-2", "seller@example.com")
	jacket.Title = "Denim Jacket"
	jacket.Description = "Vintage denim"
	jacket.Category = "clothing"
	require.NoError(t, repo.Create(ctx, jacket))

	cases := []struct {
		name    string
		filter  repository.ProductFilter
		wantIDs []string
	}{
		{name: "no filter returns all", filter: repository.ProductFilter{}, wantIDs: []string{"prod-1", "prod-2"}},
		{name: "category all returns all", filter: repository.ProductFilter{Category: "all"}, wantIDs: []string{"prod-1", "prod-2"}},
		{name: "category filter", filter: repository.ProductFilter{Category: "clothing"}, wantIDs: []string{"prod-2"}},
		{name: "search is case insensitive", filter: repository.ProductFilter{Search: "DENIM"}, wantIDs: []string{"prod-2"}},
		{name: "search matches description", filter: repository.ProductFilter{Search: "works great"}, wantIDs: []string{"prod-1"}},
		{name: "no match", filter: repository.ProductFilter{Search: "bicycle"}, wantIDs: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products, err := repo.Search(ctx, tc.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(products))
			for _, product := range products {
				ids = append(ids, product.ID)
			}
			assert.ElementsMatch(t, tc.wantIDs, ids)
		})
	}
}

func TestProductRepository_FindBySeller(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, activeProduct("prod-1", "alice@example.com")))
	require.NoError(t, repo.Create(ctx, activeProduct("prod-2", "bob@example.com")))

	products, err := repo.FindBySeller(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "prod-1", products[0].ID)
}

func TestProductRepository_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	product := activeProduct("prod-1", "seller@example.com")
	require.NoError(t, repo.Create(ctx, product))

	product.Title = "Refurbished Laptop (Price Drop)"
	product.Price = 199
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Refurbished Laptop (Price Drop)", found.Title)
	assert.InDelta(t, 199, found.Price, 0.001)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewProductRepository(newTestDB(t))

	err := repo.Update(context.Background(), activeProduct("missing", "seller@example.com"))
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, activeProduct("prod-1", "seller@example.com")))
	require.NoError(t, repo.Delete(ctx, "prod-1"))

	_, err := repo.FindByID(ctx, "prod-1")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "prod-1"), repository.ErrProductNotFound)
}

func TestProductRepository_MarkSold_TransitionsExactlyOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, activeProduct("prod-1", "seller@example.com")))

	sold, err := repo.MarkSold(ctx, "prod-1", "buyer@example.com")
	require.NoError(t, err)
	assert.True(t, sold)

	found, err := repo.FindByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusSold, found.Status)
	assert.Equal(t, "buyer@example.com", found.BuyerEmail)

	// The second attempt loses the race: the row no longer matches the
	// active-status predicate.
	sold, err = repo.MarkSold(ctx, "prod-1", "latecomer@example.com")
	require.NoError(t, err)
	assert.False(t, sold)

	found, err = repo.FindByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", found.BuyerEmail)
}

func TestProductRepository_MarkSold_UnknownProduct(t *testing.T) {
	t.Parallel()

	repo := NewProductRepository(newTestDB(t))

	sold, err := repo.MarkSold(context.Background(), "missing", "buyer@example.com")
	require.NoError(t, err)
	assert.False(t, sold)
}
