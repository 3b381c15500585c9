package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email carries a unique constraint: it
// is the conflict target of the login upsert and the join key for ledger
// increments.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `gorm:"type:varchar(100)"`
	Provider string    `gorm:"type:varchar(32)"`

	// Eco-impact ledger columns. Mutated exclusively through atomic
	// column-expression increments, never via Save.
	CO2Saved       float64 `gorm:"column:co2_saved;not null;default:0"`
	WaterSaved     float64 `gorm:"not null;default:0"`
	WasteSaved     float64 `gorm:"not null;default:0"`
	ItemsRecycled  int     `gorm:"not null;default:0"`
	ItemsPurchased int     `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
