package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"uniqueIndex;not null"`
	OrderID       string `gorm:"type:uuid;index;not null"`
	Status        string `gorm:"index;not null"`
	Method        string `gorm:"not null"`
	Amount        float64
	Notes         string `gorm:"type:text"`
	Metadata      string `gorm:"type:jsonb"`

	Order *OrderModel `gorm:"foreignKey:OrderID;references:ID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
