package model

import "time"

// ProductModel mirrors the 'products' table. Status plus the conditional
// update in the repository give the active→sold transition its atomicity.
type ProductModel struct {
	ID          string  `gorm:"type:varchar(64);primaryKey"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Badge       string  `gorm:"type:varchar(64)"`
	Image       string  `gorm:"type:text"`
	Category    string  `gorm:"type:varchar(64);index"`
	Material    string  `gorm:"type:varchar(64)"`

	// Impact snapshot fixed at listing time.
	ImpactCO2   float64 `gorm:"column:impact_co2;not null;default:0"`
	ImpactWater float64 `gorm:"not null;default:0"`
	ImpactWaste float64 `gorm:"not null;default:0"`

	SellerEmail    string `gorm:"type:varchar(255);index"`
	SellerLocation string `gorm:"type:varchar(255)"`
	SellerPhone    string `gorm:"type:varchar(64)"`

	Status     string `gorm:"type:varchar(16);not null;default:'active'"`
	BuyerEmail string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
