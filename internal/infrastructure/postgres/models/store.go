package models

import "time"

type StoreModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	OwnerID        string `gorm:"type:uuid;index"`
	Name           string
	CommissionRate float64
	TotalOrders    int64
	TotalProducts  int64
	IsActive       bool `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}
