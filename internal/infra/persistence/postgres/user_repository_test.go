package postgres

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Upsert_CreatesNewUser(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Upsert(context.Background(), &entity.User{
		Email:    "alice@example.com",
		Name:     "Alice",
		Provider: entity.ProviderTypeGoogle,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, created.Provider)
	assert.Zero(t, created.Impact.CO2Saved)
	assert.Zero(t, created.Impact.ItemsRecycled)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUserRepository_Upsert_UpdatesProfileOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	first, err := repo.Upsert(ctx, &entity.User{
		Email:    "alice@example.com",
		Name:     "Alice",
		Provider: entity.ProviderTypeGoogle,
	})
	require.NoError(t, err)

	// Credit the ledger between logins so the second upsert has something to lose.
	credited, err := repo.IncrementImpact(ctx, "alice@example.com", entity.EcoImpact{CO2: 15, Water: 1000, Waste: 2.5}, true)
	require.NoError(t, err)
	require.True(t, credited)

	second, err := repo.Upsert(ctx, &entity.User{
		Email:    "alice@example.com",
		Name:     "Alice Liddell",
		Provider: entity.ProviderTypeGoogle,
	})
	require.NoError(t, err)

	// Same identity, refreshed profile, untouched ledger.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice Liddell", second.Name)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	assert.InDelta(t, 15, second.Impact.CO2Saved, 0.001)
	assert.InDelta(t, 1000, second.Impact.WaterSaved, 0.001)
	assert.InDelta(t, 2.5, second.Impact.WasteSaved, 0.001)
	assert.Equal(t, 1, second.Impact.ItemsRecycled)
}

func TestUserRepository_IncrementImpact_SellerAndBuyerCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Upsert(ctx, &entity.User{
		Email:    "bob@example.com",
		Name:     "Bob",
		Provider: entity.ProviderTypeGoogle,
	})
	require.NoError(t, err)

	impact := entity.EcoImpact{CO2: 10, Water: 500, Waste: 1}

	credited, err := repo.IncrementImpact(ctx, "bob@example.com", impact, true)
	require.NoError(t, err)
	require.True(t, credited)

	credited, err = repo.IncrementImpact(ctx, "bob@example.com", impact, false)
	require.NoError(t, err)
	require.True(t, credited)

	user, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)

	assert.InDelta(t, 20, user.Impact.CO2Saved, 0.001)
	assert.InDelta(t, 1000, user.Impact.WaterSaved, 0.001)
	assert.InDelta(t, 2, user.Impact.WasteSaved, 0.001)
	assert.Equal(t, 1, user.Impact.ItemsRecycled)
	assert.Equal(t, 1, user.Impact.ItemsPurchased)
}

func TestUserRepository_IncrementImpact_UnknownEmailIsNoOp(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))

	credited, err := repo.IncrementImpact(context.Background(), "ghost@example.com", entity.EcoImpact{CO2: 10}, false)
	require.NoError(t, err)
	assert.False(t, credited)
}
