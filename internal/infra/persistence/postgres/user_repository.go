// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/domain/repository"
	"ecowave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Upsert finds-or-creates a user keyed by email in a single INSERT ... ON
// CONFLICT statement, so two concurrent logins for the same new email
// converge on one record. Only the mutable profile columns are rewritten on
// conflict; the ledger columns and created_at survive every re-login.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "provider", "updated_at"}),
		}).
		Create(userM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// Re-read through the conflict key: on the update path the generated ID
	// above was discarded in favor of the existing row's identity.
	return repo.FindByEmail(ctx, user.Email)
}

// IncrementImpact atomically credits the eco-impact ledger of the user with
// the given email. The increments are column expressions evaluated by the
// database, so concurrent credits never lose updates. A missing user is
// reported through the boolean, not as an error.
func (repo *userRepository) IncrementImpact(ctx context.Context, email string, impact entity.EcoImpact, asSeller bool) (bool, error) {
	assignments := map[string]any{
		"co2_saved":   gorm.Expr("co2_saved + ?", impact.CO2),
		"water_saved": gorm.Expr("water_saved + ?", impact.Water),
		"waste_saved": gorm.Expr("waste_saved + ?", impact.Waste),
		"updated_at":  time.Now(),
	}
	if asSeller {
		assignments["items_recycled"] = gorm.Expr("items_recycled + 1")
	} else {
		assignments["items_purchased"] = gorm.Expr("items_purchased + 1")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Updates(assignments)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to increment impact stats")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:       data.ID,
		Email:    data.Email,
		Name:     data.Name,
		Provider: entity.ProviderType(data.Provider),
		Impact: entity.ImpactStats{
			CO2Saved:       data.CO2Saved,
			WaterSaved:     data.WaterSaved,
			WasteSaved:     data.WasteSaved,
			ItemsRecycled:  data.ItemsRecycled,
			ItemsPurchased: data.ItemsPurchased,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		Provider:       data.Provider.String(),
		CO2Saved:       data.Impact.CO2Saved,
		WaterSaved:     data.Impact.WaterSaved,
		WasteSaved:     data.Impact.WasteSaved,
		ItemsRecycled:  data.Impact.ItemsRecycled,
		ItemsPurchased: data.Impact.ItemsPurchased,
	}
}
