package model

import "time"

// InquiryModel mirrors the 'inquiries' table.
type InquiryModel struct {
	ID           string `gorm:"type:varchar(64);primaryKey"`
	ProductID    string `gorm:"type:varchar(64);index;not null"`
	ProductTitle string `gorm:"type:varchar(255)"`
	BuyerName    string `gorm:"type:varchar(100);not null"`
	BuyerEmail   string `gorm:"type:varchar(255);not null"`
	BuyerMessage string `gorm:"type:text"`
	SellerEmail  string `gorm:"type:varchar(255);not null"`
	Status       string `gorm:"type:varchar(16);not null;default:'sent'"`

	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}
