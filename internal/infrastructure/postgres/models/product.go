package models

import "time"

type ProductModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	StoreID       string `gorm:"type:uuid;index"`
	Name          string
	Price         float64
	DiscountPrice *float64
	Stock         int `gorm:"not null;check:stock >= 0"`
	Sold          int `gorm:"not null"`
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
