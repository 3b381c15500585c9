package postgres

import (
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// repositories issue portable SQL, so the sqlite driver stands in for
// PostgreSQL in unit tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.InquiryModel{},
	))

	return db
}

func activeProduct(id, sellerEmail string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Title:       "Refurbished Laptop",
		Description: "Lightly used, works great",
		Price:       250,
		Badge:       "Like New",
		Category:    "electronics",
		EcoImpact:   entity.ImpactForCategory("electronics"),
		SellerEmail: sellerEmail,
		Status:      entity.ProductStatusActive,
	}
}
